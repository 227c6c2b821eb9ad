package vgmcore

import "fmt"

// IssueSeverity splits validation findings into ones that indicate a
// genuinely malformed file and ones that are merely unusual, per spec.md
// §4.6's distinction between "reject" and "flag" conditions.
type IssueSeverity int

const (
	SeverityAdvisory IssueSeverity = iota
	SeverityWarning
)

func (s IssueSeverity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "advisory"
}

// ValidationIssue is one post-parse finding. Unlike Error, a ValidationIssue
// never aborts a parse — it is collected and returned alongside a
// successfully decoded Artifact.
type ValidationIssue struct {
	Severity IssueSeverity
	Kind     Kind
	Offset   int64
	Message  string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("[%v] %s at offset 0x%X: %s", v.Severity, v.Kind, v.Offset, v.Message)
}

// ValidationReport collects every issue found by validate for one parse.
type ValidationReport struct {
	Issues []ValidationIssue
}

func (r *ValidationReport) add(sev IssueSeverity, kind Kind, offset int64, format string, args ...any) {
	r.Issues = append(r.Issues, ValidationIssue{Severity: sev, Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...)})
}

// HasWarnings reports whether any collected issue is a warning rather than
// merely advisory.
func (r *ValidationReport) HasWarnings() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// versionGatedField names one Optional header field and the version that
// introduced it, for the "present but too old" consistency check below.
type versionGatedField struct {
	name    string
	present bool
	since   int
}

// versionGatedFields lists the header's version-introduced optional fields.
// Field presence here is driven purely by byte offset against DataStartAbs
// (see fieldVisible in header.go), so a file can declare an old version yet
// still have a field present if its bytes happen to lie before the data
// start — this check surfaces that inconsistency rather than silently
// trusting either signal.
func versionGatedFields(h *Header) []versionGatedField {
	return []versionGatedField{
		{"loop base", h.LoopBase.Present, vgmVersion150},
		{"loop modifier", h.LoopModifier.Present, vgmVersion151},
		{"AY8910 type", h.AY8910Type.Present, vgmVersion151},
		{"AY8910 flags", h.AY8910Flags.Present, vgmVersion151},
		{"YM2203 AY flags", h.YM2203AYFlags.Present, vgmVersion151},
		{"YM2608 AY flags", h.YM2608AYFlags.Present, vgmVersion151},
		{"volume modifier", h.VolumeModifier.Present, vgmVersion160},
		{"OKIM6258 flags", h.OKIM6258Flags.Present, vgmVersion161},
		{"K054539 flags", h.K054539Flags.Present, vgmVersion161},
		{"C140 type", h.C140Type.Present, vgmVersion161},
		{"extra header", h.ExtraHeaderOffsetAbs.Present, vgmVersion170},
		{"ES5503 channels", h.ES5503Channels.Present, vgmVersion171},
		{"ES5506 channels", h.ES5506Channels.Present, vgmVersion171},
		{"C352 clock divider", h.C352ClockDivider.Present, vgmVersion171},
	}
}

// validate implements spec.md §4.6's cross-field consistency pass over an
// already-decoded Header and command stream. It never returns an error: a
// validation finding downgrades to a report entry, never a parse failure,
// so a caller can always inspect what was found and decide for itself.
func validate(h *Header, commands []Command, banks *DataBankTable) *ValidationReport {
	report := &ValidationReport{}

	const maxPlausibleClockHz = 100_000_000

	for chip, clock := range h.ChipClocks {
		if clock.DualChip && !dualChipCapable[chip] {
			report.add(SeverityWarning, KindInvalidClock, 0,
				"dual-chip bit set on %s, which this package does not recognize as dual-chip capable", chip)
		}
		if clock.FrequencyHz == 0 && clock.DualChip {
			report.add(SeverityAdvisory, KindInvalidClock, 0,
				"%s clock is zero but its dual-chip bit is set", chip)
		}
		if clock.FrequencyHz > maxPlausibleClockHz {
			report.add(SeverityWarning, KindInvalidClock, 0,
				"%s clock %d Hz exceeds the plausible range (>%d Hz)", chip, clock.FrequencyHz, maxPlausibleClockHz)
		}
	}

	if h.LoopOffsetAbs.Present && h.LoopSamples == 0 {
		report.add(SeverityAdvisory, KindOffsetOutOfRange, int64(h.LoopOffsetAbs.Value),
			"loop offset is set but loop sample count is zero")
	}
	if !h.LoopOffsetAbs.Present && h.LoopSamples != 0 {
		report.add(SeverityWarning, KindOffsetOutOfRange, 0,
			"loop sample count %d set without a loop offset", h.LoopSamples)
	}
	if h.LoopOffsetAbs.Present {
		lo := h.LoopOffsetAbs.Value
		if lo < h.DataStartAbs || lo > h.EOFOffsetAbs {
			report.add(SeverityWarning, KindOffsetOutOfRange, int64(lo),
				"loop offset 0x%X resolves outside [data-start 0x%X, eof 0x%X]", lo, h.DataStartAbs, h.EOFOffsetAbs)
		}
	}

	if h.LoopBase.Present && h.LoopBase.Value < 0 {
		report.add(SeverityAdvisory, KindOffsetOutOfRange, offLoopBase,
			"loop base byte 0x%02X is read as signed %d; an unsigned reading would give %d",
			uint8(h.LoopBase.Value), h.LoopBase.Value, uint8(h.LoopBase.Value))
	}

	version := versionValue(h.VersionMajor, h.VersionMinor)
	for _, f := range versionGatedFields(h) {
		if f.present && version < f.since {
			report.add(SeverityWarning, KindWrongFieldCount, 0,
				"%s is present but the file declares version %d.%02x, which predates its introduction",
				f.name, h.VersionMajor, h.VersionMinor)
		}
	}

	sawEnd := false
	var sampleTotal uint64
	for _, c := range commands {
		switch v := c.(type) {
		case Wait:
			sampleTotal += uint64(v.Samples)
		case EndOfSoundData:
			sawEnd = true
		case RegisterWrite:
			if v.Chip == ChipUnknown {
				report.add(SeverityAdvisory, KindInvalidChipIndex, v.Offset(), "register write addresses an unrecognized chip")
			}
		}
	}
	if !sawEnd {
		report.add(SeverityWarning, KindTruncatedCommandStream, 0, "command stream has no EndOfSoundData terminator")
	}
	if h.TotalSamples != 0 && sampleTotal != uint64(h.TotalSamples) {
		report.add(SeverityAdvisory, KindWrongFieldCount, 0,
			"header declares %d total samples but the command stream accounts for %d", h.TotalSamples, sampleTotal)
	}

	for chip, bank := range banks.Banks {
		for _, frag := range bank.RomFragments {
			if uint64(frag.StartAddress)+uint64(len(frag.Data)) > uint64(frag.TotalRomSize) {
				report.add(SeverityWarning, KindInvalidDataBlock, frag.Offset,
					"%s ROM fragment at 0x%X extends past its declared total ROM size %d", chip, frag.StartAddress, frag.TotalRomSize)
			}
		}
	}

	return report
}
