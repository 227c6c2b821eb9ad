package vgmcore

import "encoding/binary"

// u8/u16/u24/u32 read unsigned little-endian integers from data starting at
// off, returning false if the read would run past len(data). They never
// allocate and never panic, mirroring the teacher's bounds-checked closures
// in ym_parser.go (readU32/readU16).

func readU8(data []byte, off int) (uint8, bool) {
	if off < 0 || off+1 > len(data) {
		return 0, false
	}
	return data[off], true
}

func readU16LE(data []byte, off int) (uint16, bool) {
	if off < 0 || off+2 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(data[off : off+2]), true
}

func readU24LE(data []byte, off int) (uint32, bool) {
	if off < 0 || off+3 > len(data) {
		return 0, false
	}
	return uint32(data[off]) | uint32(data[off+1])<<8 | uint32(data[off+2])<<16, true
}

func readU32LE(data []byte, off int) (uint32, bool) {
	if off < 0 || off+4 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[off : off+4]), true
}

func putU16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

func putU24LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

func putU32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// decodeBCD32 decodes a 32-bit value as four BCD-encoded bytes (as used by
// the VGM version field, e.g. 0x00000171 -> "1.71") and rejects any nibble
// whose value exceeds 9.
func decodeBCD32(v uint32) (major, minor uint8, err error) {
	bytes4 := [4]uint8{uint8(v), uint8(v >> 8), uint8(v >> 16), uint8(v >> 24)}
	for _, b := range bytes4 {
		if (b&0x0F) > 9 || (b>>4) > 9 {
			return 0, 0, newErr(KindInvalidBcd, -1, "BCD digit out of range in byte 0x%02X", b)
		}
	}
	// VGM version is stored as 0x0000AABB meaning version AA.BB: byte 1
	// holds the major, the low byte the minor, and the upper two bytes are
	// zero in every version this package targets.
	major = bytes4[1]
	minor = bytes4[0]
	return major, minor, nil
}

// encodeBCD32 is the inverse of decodeBCD32 for the major.minor pair it
// produces, used by the serializer to round-trip the version field.
func encodeBCD32(major, minor uint8) uint32 {
	return uint32(minor) | uint32(major)<<8
}

// versionValue turns a decoded (major, minor) BCD pair into a comparable
// integer, e.g. (1, 0x71) -> 171, so header field gating can compare against
// constants like vgmVersion170 without redoing BCD math everywhere. minor is
// still the raw BCD byte at this point (its nibbles are decimal digits, not
// a decimal number itself), so it must be unpacked nibble-by-nibble rather
// than added directly.
func versionValue(major, minor uint8) int {
	return int(major)*100 + int(minor>>4)*10 + int(minor&0x0F)
}

const (
	vgmVersion150 = 150
	vgmVersion151 = 151
	vgmVersion160 = 160
	vgmVersion161 = 161
	vgmVersion170 = 170
	vgmVersion171 = 171
	vgmVersion172 = 172
)

// clockField splits a raw 32-bit chip-clock header field into its three
// overloaded meanings per spec.md §3: low 30 bits frequency, bit 30
// dual-chip presence, bit 31 variant selector.
type clockField struct {
	FrequencyHz uint32
	DualChip    bool
	Variant     bool
}

func decodeClockField(raw uint32) clockField {
	return clockField{
		FrequencyHz: raw & 0x3FFFFFFF,
		DualChip:    raw&0x40000000 != 0,
		Variant:     raw&0x80000000 != 0,
	}
}

func (c clockField) encode() uint32 {
	v := c.FrequencyHz & 0x3FFFFFFF
	if c.DualChip {
		v |= 0x40000000
	}
	if c.Variant {
		v |= 0x80000000
	}
	return v
}

// signedByte interprets b as a two's-complement 8-bit signed integer, used
// for the header's loop-base field per spec.md §9's resolved open question.
func signedByte(b uint8) int8 { return int8(b) }

// checkedAddU32 adds a and b, returning (0, false) on 32-bit overflow. The
// data-block path uses checkedAddInt instead; nothing calls this helper.
func checkedAddU32(a, b uint32) (uint32, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// checkedAddInt adds a and b as platform ints, returning (0, false) on
// overflow (relevant on 32-bit builds when accumulating offsets).
func checkedAddInt(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
