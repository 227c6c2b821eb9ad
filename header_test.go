package vgmcore

import (
	"encoding/binary"
	"testing"
)

// buildVGMHeader creates a minimal VGM header with data starting at offset
// 0x80, in the style of the teacher's vgm_parser_test.go helper of the same
// name.
func buildVGMHeader(totalSamples uint32, ay8910Clock uint32) []byte {
	header := make([]byte, 0x80)
	copy(header[0:4], []byte("Vgm "))
	binary.LittleEndian.PutUint32(header[0x08:0x0C], 0x00000172)
	binary.LittleEndian.PutUint32(header[0x18:0x1C], totalSamples)
	binary.LittleEndian.PutUint32(header[0x34:0x38], 0x4C) // data offset: 0x34+0x4C=0x80
	binary.LittleEndian.PutUint32(header[0x74:0x78], ay8910Clock)
	return header
}

func TestDecodeHeader_Basic(t *testing.T) {
	header := buildVGMHeader(735, 1773400)
	data := append(header, 0x62, 0x66)

	tracker := NewResourceTracker(DefaultParserConfig())
	h, err := decodeHeader(data, tracker)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if h.VersionMajor != 1 || h.VersionMinor != 0x72 {
		t.Errorf("version = %d.%02x, want 1.72", h.VersionMajor, h.VersionMinor)
	}
	if h.DataStartAbs != 0x80 {
		t.Errorf("DataStartAbs = 0x%X, want 0x80", h.DataStartAbs)
	}
	if h.TotalSamples != 735 {
		t.Errorf("TotalSamples = %d, want 735", h.TotalSamples)
	}
	clock, ok := h.ChipClocks[ChipAY8910]
	if !ok || clock.FrequencyHz != 1773400 {
		t.Errorf("ChipClocks[ChipAY8910] = %+v, ok=%v, want freq 1773400", clock, ok)
	}
}

func TestDecodeHeader_RejectsBadMagic(t *testing.T) {
	header := buildVGMHeader(0, 0)
	header[0] = 'X'
	tracker := NewResourceTracker(DefaultParserConfig())
	_, err := decodeHeader(header, tracker)
	if err == nil {
		t.Fatal("expected an error for bad magic")
	}
	verr, ok := err.(*Error)
	if !ok || verr.Kind != KindBadMagic {
		t.Errorf("got err=%v, want KindBadMagic", err)
	}
}

// TestDecodeHeader_FieldBeyondDataStartIsAbsent exercises spec's "growth over
// versions" rule: a field whose offset is at or past the resolved
// VGM-data-offset must decode as not-Present, even if version-gated fields
// there hold readable (non-zero) bytes, because a too-small declared data
// offset means those bytes are not part of this header region at all.
func TestDecodeHeader_FieldBeyondDataStartIsAbsent(t *testing.T) {
	header := buildVGMHeader(0, 0)
	binary.LittleEndian.PutUint32(header[0x34:0x38], 0x3C) // data offset 0x34+0x3C=0x70, before AY8910 clock at 0x74
	binary.LittleEndian.PutUint32(header[0x74:0x78], 1773400)
	data := append(header, make([]byte, 0x10)...)

	tracker := NewResourceTracker(DefaultParserConfig())
	h, err := decodeHeader(data, tracker)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if _, present := h.ChipClocks[ChipAY8910]; present {
		t.Error("AY8910 clock should be absent: its offset lies at or past the resolved data start")
	}
}

func TestFieldVisible(t *testing.T) {
	if !fieldVisible(0x10, 4, 0x80, 0x100) {
		t.Error("field well within bounds should be visible")
	}
	if fieldVisible(0x7E, 4, 0x80, 0x100) {
		t.Error("field crossing dataStart should not be visible")
	}
	if fieldVisible(0x90, 4, 0x80, 0x88) {
		t.Error("field past file length should not be visible")
	}
}
