package vgmcore

// Optional is a tagged-presence wrapper per the header's "presence, not
// inheritance" design note (spec.md §9): each growable header field is an
// option-typed member of one flat record instead of a type hierarchy keyed
// by version.
type Optional[T any] struct {
	Value   T
	Present bool
}

func some[T any](v T) Optional[T] { return Optional[T]{Value: v, Present: true} }

// Header is the decoded VGM header, covering every field up to v1.72.
// Fields whose defining offset lies at or past the resolved VGM-data-start
// decode as Present == false, regardless of what bytes sit on disk there
// (spec.md §4.1 step 4) — this models the format's progressive growth
// across roughly eight versions.
type Header struct {
	VersionMajor uint8
	VersionMinor uint8

	EOFOffsetAbs         uint32
	GD3OffsetAbs         Optional[uint32]
	LoopOffsetAbs        Optional[uint32]
	DataStartAbs         uint32
	ExtraHeaderOffsetAbs Optional[uint32]

	TotalSamples uint32
	LoopSamples  uint32
	RateHz       uint32

	// ChipClocks holds every header clock field actually present in this
	// file, keyed by chip. A chip absent from the map means its defining
	// offset was beyond DataStartAbs (never on disk as far as this header
	// is concerned); a chip present with FrequencyHz == 0 means the byte
	// was readable but zero, which validate.go treats as "chip unused."
	ChipClocks map[ChipKind]ChipClock

	PSGFeedback           Optional[uint16]
	PSGShiftRegisterWidth Optional[uint8]
	PSGFlags              Optional[uint8]

	AY8910Type       Optional[uint8]
	AY8910Flags      Optional[uint8]
	YM2203AYFlags    Optional[uint8]
	YM2608AYFlags    Optional[uint8]
	OKIM6258Flags    Optional[uint8]
	K054539Flags     Optional[uint8]
	C140Type         Optional[uint8]
	ES5503Channels   Optional[uint8]
	ES5506Channels   Optional[uint8]
	C352ClockDivider Optional[uint8]

	VolumeModifier Optional[int8]
	LoopBase       Optional[int8]
	LoopModifier   Optional[uint8]

	Extra *ExtraHeader

	// rawHeaderBytes is a copy of the file's header region ([0, DataStartAbs)
	// as originally read. The serializer starts from this and overwrites only
	// the byte ranges this package models, so bytes in gaps or reserved
	// fields this package does not interpret survive a round trip unchanged.
	rawHeaderBytes []byte
}

// header field byte offsets, named per spec.md §3/§6. Offsets are absolute
// from the start of the (already gzip-unwrapped) file.
const (
	offMagic        = 0x00
	offEOFOffset    = 0x04
	offVersion      = 0x08
	offGD3Offset    = 0x14
	offTotalSamples = 0x18
	offLoopOffset   = 0x1C
	offLoopSamples  = 0x20
	offRateHz       = 0x24
	offPSGFeedback  = 0x28
	offPSGShiftReg  = 0x2A
	offPSGFlags     = 0x2B
	offVGMDataOff   = 0x34
	offAY8910Type   = 0x78
	offAY8910Flags  = 0x79
	offYM2203AY     = 0x7A
	offYM2608AY     = 0x7B
	offVolumeMod    = 0x7C
	offLoopBase     = 0x7E
	offLoopModifier = 0x7F
	offOKIM6258Flag = 0x94
	offK054539Flag  = 0x95
	offC140Type     = 0x96
	offES5503Chans  = 0xD4
	offES5506Chans  = 0xD5
	offC352Divider  = 0xD6
	offExtraHeader  = 0xBC

	minHeaderLen = 0x40
)

// clockFieldOffsets lists every chip's 32-bit clock field offset, in the
// order real VGM files lay them out. Anything not in this table (e.g. the
// Sega PCM interface register) is outside this package's scope.
var clockFieldOffsets = map[ChipKind]int{
	ChipSN76489:    0x0C,
	ChipYM2413:     0x10,
	ChipYM2612:     0x2C,
	ChipYM2151:     0x30,
	ChipSegaPCM:    0x38,
	ChipRF5C68:     0x40,
	ChipYM2203:     0x44,
	ChipYM2608:     0x48,
	ChipYM2610:     0x4C,
	ChipYM3812:     0x50,
	ChipYM3526:     0x54,
	ChipY8950:      0x58,
	ChipYMF262:     0x5C,
	ChipYMF278B:    0x60,
	ChipYMF271:     0x64,
	ChipYMZ280B:    0x68,
	ChipRF5C164:    0x6C,
	ChipPWM:        0x70,
	ChipAY8910:     0x74,
	ChipGameBoyDMG: 0x80,
	ChipNESAPU:     0x84,
	ChipMultiPCM:   0x88,
	ChipUPD7759:    0x8C,
	ChipOKIM6258:   0x90,
	ChipOKIM6295:   0x98,
	ChipK051649:    0x9C,
	ChipK054539:    0xA0,
	ChipHuC6280:    0xA4,
	ChipC140:       0xA8,
	ChipK053260:    0xAC,
	ChipPokey:      0xB0,
	ChipQSound:     0xB4,
	ChipSCSP:       0xB8,
	ChipWonderSwan: 0xC0,
	ChipVSU:        0xC4,
	ChipSAA1099:    0xC8,
	ChipES5503:     0xCC,
	ChipES5506:     0xD0,
	ChipX1010:      0xD8,
	ChipC352:       0xDC,
	ChipGA20:       0xE0,
}

// fieldVisible reports whether a field of width w at absolute offset off
// should be decoded: it must both fit in the file and lie entirely below
// the resolved VGM-data-start, per spec.md §4.1 step 4.
func fieldVisible(off, w int, dataStart uint32, fileLen int) bool {
	if off < 0 || off+w > fileLen {
		return false
	}
	return off+w <= int(dataStart)
}

// decodeHeader implements spec.md §4.1. data is the full (gzip-unwrapped)
// file; tracker enforces the extra-header's recursion budget.
func decodeHeader(data []byte, tracker *ResourceTracker) (*Header, error) {
	if len(data) < minHeaderLen {
		return nil, newErr(KindTruncatedHeader, 0, "file is %d bytes, need at least %d", len(data), minHeaderLen)
	}
	if string(data[0:4]) != "Vgm " {
		return nil, newErr(KindBadMagic, 0, "expected \"Vgm \", got %q", data[0:4])
	}

	rawVersion, _ := readU32LE(data, offVersion)
	major, minor, err := decodeBCD32(rawVersion)
	if err != nil {
		return nil, err
	}
	version := versionValue(major, minor)

	rawDataOffset, _ := readU32LE(data, offVGMDataOff)
	var dataStart uint32
	if version < vgmVersion150 || rawDataOffset == 0 {
		dataStart = minHeaderLen
	} else {
		dataStart = uint32(offVGMDataOff) + rawDataOffset
	}
	if int(dataStart) < minHeaderLen || int(dataStart) > len(data) {
		return nil, newErr(KindOffsetOutOfRange, offVGMDataOff,
			"resolved VGM data offset 0x%X out of range [0x%X, 0x%X]", dataStart, minHeaderLen, len(data))
	}

	h := &Header{
		VersionMajor: major,
		VersionMinor: minor,
		DataStartAbs: dataStart,
		ChipClocks:   make(map[ChipKind]ChipClock),
	}

	fileLen := len(data)
	visible := func(off, w int) bool { return fieldVisible(off, w, dataStart, fileLen) }

	// EOF offset is always present (it sits before the minimum header size
	// and predates every version VGM defines).
	if rawEOF, ok := readU32LE(data, offEOFOffset); ok {
		h.EOFOffsetAbs = uint32(offEOFOffset) + rawEOF
	} else {
		return nil, newErr(KindTruncatedHeader, offEOFOffset, "EOF offset field truncated")
	}

	if visible(offGD3Offset, 4) {
		if raw, _ := readU32LE(data, offGD3Offset); raw != 0 {
			h.GD3OffsetAbs = some(uint32(offGD3Offset) + raw)
		}
	}
	if raw, ok := readU32LE(data, offTotalSamples); ok && visible(offTotalSamples, 4) {
		h.TotalSamples = raw
	}
	if visible(offLoopOffset, 4) {
		if raw, _ := readU32LE(data, offLoopOffset); raw != 0 {
			h.LoopOffsetAbs = some(uint32(offLoopOffset) + raw)
		}
	}
	if raw, ok := readU32LE(data, offLoopSamples); ok && visible(offLoopSamples, 4) {
		h.LoopSamples = raw
	}
	if raw, ok := readU32LE(data, offRateHz); ok && visible(offRateHz, 4) {
		h.RateHz = raw
	}
	if raw, ok := readU16LE(data, offPSGFeedback); ok && visible(offPSGFeedback, 2) {
		h.PSGFeedback = some(raw)
	}
	if raw, ok := readU8(data, offPSGShiftReg); ok && visible(offPSGShiftReg, 1) {
		h.PSGShiftRegisterWidth = some(raw)
	}
	if raw, ok := readU8(data, offPSGFlags); ok && visible(offPSGFlags, 1) {
		h.PSGFlags = some(raw)
	}

	for chip, off := range clockFieldOffsets {
		if !visible(off, 4) {
			continue
		}
		raw, ok := readU32LE(data, off)
		if !ok {
			continue
		}
		cf := decodeClockField(raw)
		h.ChipClocks[chip] = ChipClock{FrequencyHz: cf.FrequencyHz, DualChip: cf.DualChip, Variant: cf.Variant}
	}

	if raw, ok := readU8(data, offAY8910Type); ok && visible(offAY8910Type, 1) {
		h.AY8910Type = some(raw)
	}
	if raw, ok := readU8(data, offAY8910Flags); ok && visible(offAY8910Flags, 1) {
		h.AY8910Flags = some(raw)
	}
	if raw, ok := readU8(data, offYM2203AY); ok && visible(offYM2203AY, 1) {
		h.YM2203AYFlags = some(raw)
	}
	if raw, ok := readU8(data, offYM2608AY); ok && visible(offYM2608AY, 1) {
		h.YM2608AYFlags = some(raw)
	}
	if raw, ok := readU8(data, offVolumeMod); ok && visible(offVolumeMod, 1) {
		h.VolumeModifier = some(int8(raw))
	}
	if raw, ok := readU8(data, offLoopBase); ok && visible(offLoopBase, 1) {
		h.LoopBase = some(signedByte(raw))
	}
	if raw, ok := readU8(data, offLoopModifier); ok && visible(offLoopModifier, 1) {
		h.LoopModifier = some(raw)
	}
	if raw, ok := readU8(data, offOKIM6258Flag); ok && visible(offOKIM6258Flag, 1) {
		h.OKIM6258Flags = some(raw)
	}
	if raw, ok := readU8(data, offK054539Flag); ok && visible(offK054539Flag, 1) {
		h.K054539Flags = some(raw)
	}
	if raw, ok := readU8(data, offC140Type); ok && visible(offC140Type, 1) {
		h.C140Type = some(raw)
	}
	if raw, ok := readU8(data, offES5503Chans); ok && visible(offES5503Chans, 1) {
		h.ES5503Channels = some(raw)
	}
	if raw, ok := readU8(data, offES5506Chans); ok && visible(offES5506Chans, 1) {
		h.ES5506Channels = some(raw)
	}
	if raw, ok := readU8(data, offC352Divider); ok && visible(offC352Divider, 1) {
		h.C352ClockDivider = some(raw)
	}

	if visible(offExtraHeader, 4) && version >= vgmVersion170 {
		raw, _ := readU32LE(data, offExtraHeader)
		if raw != 0 {
			abs := uint32(offExtraHeader) + raw
			h.ExtraHeaderOffsetAbs = some(abs)
			done, rerr := tracker.EnterRecursion(int64(abs))
			if rerr != nil {
				return nil, rerr
			}
			extra, perr := decodeExtraHeader(data, int(abs))
			done()
			if perr != nil {
				return nil, perr
			}
			h.Extra = extra
		}
	}

	h.rawHeaderBytes = append([]byte(nil), data[:dataStart]...)

	return h, nil
}

// KnownChipClocks returns the decoded clock fields present in this header,
// a convenience view in the spirit of the teacher's named-clock-constant
// tables (psg_constants.go).
func (h *Header) KnownChipClocks() map[ChipKind]ChipClock {
	out := make(map[ChipKind]ChipClock, len(h.ChipClocks))
	for k, v := range h.ChipClocks {
		out[k] = v
	}
	return out
}
