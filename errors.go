package vgmcore

import "fmt"

// Category groups error Kinds for callers that want to react to a whole
// class of failure (fix the file vs. raise a limit vs. upgrade the parser).
type Category string

const (
	CategoryFormat   Category = "format"
	CategorySemantic Category = "semantic"
	CategoryResource Category = "resource"
	CategoryFeature  Category = "feature"
)

// SuggestedAction is a remediation hint attached to every Error.
type SuggestedAction string

const (
	ActionFixFile      SuggestedAction = "fix-file"
	ActionRaiseLimit   SuggestedAction = "raise-limit"
	ActionUpgrade      SuggestedAction = "upgrade-parser"
	ActionReportBug    SuggestedAction = "report-bug"
)

// Kind is the closed set of error kinds this package can report.
type Kind string

const (
	// Structural [format]
	KindBadMagic               Kind = "bad_magic"
	KindTruncatedHeader        Kind = "truncated_header"
	KindTruncatedCommandStream Kind = "truncated_command_stream"
	KindTruncatedMetadata      Kind = "truncated_metadata"
	KindInvalidBcd             Kind = "invalid_bcd"
	KindUnsupportedVersion     Kind = "unsupported_version"

	// Decoding [format]
	KindUnknownCommand            Kind = "unknown_command"
	KindUnsupportedCompression    Kind = "unsupported_compression"
	KindInvalidCompressionSubType Kind = "invalid_compression_sub_type"
	KindWrongFieldCount           Kind = "wrong_field_count"
	KindInvalidUtf16              Kind = "invalid_utf16"
	KindInvalidDataBlock          Kind = "invalid_data_block"

	// Cross-field [semantic]
	KindOffsetOutOfRange Kind = "offset_out_of_range"
	KindInvalidClock     Kind = "invalid_clock"
	KindInvalidChipIndex Kind = "invalid_chip_index"

	// Resource [resource]
	KindAllocationLimitExceeded Kind = "allocation_limit_exceeded"
	KindRecursionLimitExceeded  Kind = "recursion_limit_exceeded"
	KindSizeOverflow            Kind = "size_overflow"

	// Serialization [feature]
	KindFeatureNotSupported Kind = "feature_not_supported"
)

var kindCategory = map[Kind]Category{
	KindBadMagic:                  CategoryFormat,
	KindTruncatedHeader:           CategoryFormat,
	KindTruncatedCommandStream:    CategoryFormat,
	KindTruncatedMetadata:         CategoryFormat,
	KindInvalidBcd:                CategoryFormat,
	KindUnsupportedVersion:        CategoryFormat,
	KindUnknownCommand:            CategoryFormat,
	KindUnsupportedCompression:    CategoryFormat,
	KindInvalidCompressionSubType: CategoryFormat,
	KindWrongFieldCount:           CategoryFormat,
	KindInvalidUtf16:              CategoryFormat,
	KindInvalidDataBlock:          CategoryFormat,
	KindOffsetOutOfRange:          CategorySemantic,
	KindInvalidClock:              CategorySemantic,
	KindInvalidChipIndex:          CategorySemantic,
	KindAllocationLimitExceeded:   CategoryResource,
	KindRecursionLimitExceeded:    CategoryResource,
	KindSizeOverflow:              CategoryResource,
	KindFeatureNotSupported:       CategoryFeature,
}

var kindRecoverable = map[Kind]bool{
	KindAllocationLimitExceeded: true,
	KindRecursionLimitExceeded:  true,
	KindUnsupportedVersion:      true,
	KindFeatureNotSupported:     true,
}

var kindAction = map[Kind]SuggestedAction{
	KindBadMagic:                  ActionFixFile,
	KindTruncatedHeader:           ActionFixFile,
	KindTruncatedCommandStream:    ActionFixFile,
	KindTruncatedMetadata:         ActionFixFile,
	KindInvalidBcd:                ActionFixFile,
	KindUnsupportedVersion:        ActionUpgrade,
	KindUnknownCommand:            ActionUpgrade,
	KindUnsupportedCompression:    ActionUpgrade,
	KindInvalidCompressionSubType: ActionFixFile,
	KindWrongFieldCount:           ActionFixFile,
	KindInvalidUtf16:              ActionFixFile,
	KindInvalidDataBlock:          ActionFixFile,
	KindOffsetOutOfRange:          ActionFixFile,
	KindInvalidClock:              ActionFixFile,
	KindInvalidChipIndex:          ActionFixFile,
	KindAllocationLimitExceeded:   ActionRaiseLimit,
	KindRecursionLimitExceeded:    ActionRaiseLimit,
	KindSizeOverflow:              ActionFixFile,
	KindFeatureNotSupported:       ActionReportBug,
}

// Error is the single error type returned across this package's public
// surface. It is never wrapped behind a generic error without losing the
// fields below — callers that need to branch on failure class should use
// errors.As to recover an *Error.
type Error struct {
	Kind      Kind
	Category  Category
	Offset    int64 // -1 when not applicable
	Message   string
	Action    SuggestedAction
	Recovered bool // true if Kind is recoverable in general (see IsRecoverable)

	// Extra carries kind-specific context (opcode, field name, chip id, ...)
	// for callers that want more than the formatted Message.
	Extra map[string]any
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("vgmcore: %s at offset 0x%X: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("vgmcore: %s: %s", e.Kind, e.Message)
}

// IsRecoverable reports whether the caller may reasonably retry (e.g. with
// relaxed resource limits or a newer parser) rather than treat the input as
// permanently malformed.
func (e *Error) IsRecoverable() bool { return e.Recovered }

func newErr(kind Kind, offset int64, format string, args ...any) *Error {
	return &Error{
		Kind:      kind,
		Category:  kindCategory[kind],
		Offset:    offset,
		Message:   fmt.Sprintf(format, args...),
		Action:    kindAction[kind],
		Recovered: kindRecoverable[kind],
	}
}

func newErrExtra(kind Kind, offset int64, extra map[string]any, format string, args ...any) *Error {
	e := newErr(kind, offset, format, args...)
	e.Extra = extra
	return e
}
