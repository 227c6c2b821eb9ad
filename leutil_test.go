package vgmcore

import "testing"

func TestDecodeBCD32(t *testing.T) {
	major, minor, err := decodeBCD32(0x00000172)
	if err != nil {
		t.Fatalf("decodeBCD32: %v", err)
	}
	if major != 0x01 || minor != 0x72 {
		t.Errorf("got major=%#x minor=%#x, want 0x01, 0x72", major, minor)
	}
}

func TestDecodeBCD32_RejectsNonBCDNibble(t *testing.T) {
	if _, _, err := decodeBCD32(0x000001FA); err == nil {
		t.Fatal("expected an error for a non-BCD nibble, got nil")
	}
}

func TestBCD32RoundTrip(t *testing.T) {
	major, minor, err := decodeBCD32(encodeBCD32(1, 0x72))
	if err != nil {
		t.Fatalf("decodeBCD32: %v", err)
	}
	if major != 1 || minor != 0x72 {
		t.Errorf("round trip gave major=%d minor=%#x", major, minor)
	}
}

func TestClockFieldRoundTrip(t *testing.T) {
	cases := []uint32{0, 3579545, 0x40000000 | 3579545, 0x80000000 | 3579545, 0xC0000000 | 7670453}
	for _, raw := range cases {
		got := decodeClockField(raw).encode()
		if got != raw {
			t.Errorf("decodeClockField(0x%08X).encode() = 0x%08X", raw, got)
		}
	}
}

func TestVersionValue_UnpacksBCDMinor(t *testing.T) {
	cases := []struct {
		major, minor uint8
		want         int
	}{
		{1, 0x72, 172},
		{1, 0x50, 150},
		{1, 0x51, 151},
		{1, 0x61, 161},
		{1, 0x00, 100},
	}
	for _, c := range cases {
		if got := versionValue(c.major, c.minor); got != c.want {
			t.Errorf("versionValue(%d, 0x%02X) = %d, want %d", c.major, c.minor, got, c.want)
		}
	}
}

func TestReadU32LE_BoundsChecked(t *testing.T) {
	data := []byte{1, 2, 3}
	if _, ok := readU32LE(data, 0); ok {
		t.Fatal("expected readU32LE to fail on a 3-byte buffer")
	}
	if _, ok := readU16LE(data, 2); ok {
		t.Fatal("expected readU16LE to fail one byte short")
	}
}
