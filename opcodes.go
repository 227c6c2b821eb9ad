package vgmcore

// ymFamilyEntry describes one chip/port pair addressed by the contiguous
// YM-family opcode ranges 0x51..0x5F (chip instance 0) and 0xA0..0xAE
// (chip instance 1, spec.md §4.2's dual-chip range).
type ymFamilyEntry struct {
	Chip ChipKind
	Port uint8
}

// ymFamilyByOffset maps (opcode - 0x51) to the chip/port it addresses.
// Opcode 0xAF (offset 15) has no counterpart in the 0x51..0x5F range and
// decodes as Reserved.
var ymFamilyByOffset = [15]ymFamilyEntry{
	{ChipYM2413, 0},
	{ChipYM2612, 0},
	{ChipYM2612, 1},
	{ChipYM2151, 0},
	{ChipYM2203, 0},
	{ChipYM2608, 0},
	{ChipYM2608, 1},
	{ChipYM2610, 0},
	{ChipYM2610, 1},
	{ChipYM3812, 0},
	{ChipYM3526, 0},
	{ChipY8950, 0},
	{ChipYMZ280B, 0},
	{ChipYMF262, 0},
	{ChipYMF262, 1},
}

// extendedChipByOffset maps (opcode - 0xB0) to the chip addressed by the
// "extended chip writes" opcode range 0xB0..0xBF.
var extendedChipByOffset = [16]ChipKind{
	ChipRF5C68, ChipRF5C164, ChipPWM, ChipGameBoyDMG,
	ChipNESAPU, ChipMultiPCM, ChipUPD7759, ChipOKIM6258,
	ChipOKIM6295, ChipK051649, ChipK054539, ChipHuC6280,
	ChipC140, ChipK053260, ChipPokey, ChipQSound,
}

// memWriteChipByOffset maps (opcode - 0xC0) to the chip addressed by the
// 16-bit-addressed memory write opcode range 0xC0..0xC8. Offsets without a
// well-known chip still decode correctly (MemoryWrite.Chip is metadata,
// not required for byte-accurate round-trip).
var memWriteChipByOffset = [9]ChipKind{
	ChipSegaPCM, ChipRF5C68, ChipRF5C164, ChipUnknown,
	ChipUnknown, ChipUnknown, ChipUnknown, ChipUnknown, ChipUnknown,
}

// portQualifiedChipByOffset maps (opcode - 0xD0) to the chip addressed by
// the port-qualified write opcode range 0xD0..0xD6.
var portQualifiedChipByOffset = [7]ChipKind{
	ChipYMF278B, ChipYMF271, ChipK051649, ChipUnknown,
	ChipUnknown, ChipUnknown, ChipUnknown,
}

// reservedOperandWidth returns the documented operand width (bytes after
// the opcode byte) for an opcode in one of the reserved-for-future-use
// ranges, so the decoder can skip it without understanding it — forward
// compatibility per spec.md §4.2.
func reservedOperandWidth(op byte) (int, bool) {
	switch {
	case op >= 0x32 && op <= 0x3F:
		return 1, true
	case op >= 0x41 && op <= 0x4E:
		return 2, true
	case op >= 0xC9 && op <= 0xCF:
		return 3, true
	case op >= 0xD7 && op <= 0xDF:
		return 3, true
	case op >= 0xE2 && op <= 0xFF:
		return 4, true
	default:
		return 0, false
	}
}
