package vgmcore

import "testing"

func TestGD3RoundTrip(t *testing.T) {
	g := &GD3{
		VersionMajor: 1,
		VersionMinor: 0,
		TrackNameEN:  "Title",
		GameNameEN:   "Game",
		SystemNameEN: "Sega Genesis",
		ComposerEN:   "Composer",
		ReleaseDate:  "2001",
		Converter:    "vgmforge",
		Notes:        "ripped with care",
	}
	encoded := g.encode()

	data := make([]byte, 0x10)
	data = append(data, encoded...)
	decoded, err := decodeGD3(data, 0x10)
	if err != nil {
		t.Fatalf("decodeGD3: %v", err)
	}
	if decoded.TrackNameEN != g.TrackNameEN || decoded.GameNameEN != g.GameNameEN {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Notes != g.Notes {
		t.Errorf("Notes = %q, want %q", decoded.Notes, g.Notes)
	}
}

func TestDecodeGD3_RejectsBadMagic(t *testing.T) {
	data := make([]byte, 12)
	copy(data, "Xd3 ")
	if _, err := decodeGD3(data, 0); err == nil {
		t.Fatal("expected an error for bad GD3 magic")
	}
}

func TestDecodeGD3_RejectsUnpairedSurrogate(t *testing.T) {
	data := []byte("Gd3 ")
	data = append(data, 0, 1, 0, 0) // version 1.00

	// field 0: a lone high surrogate (0xD800) with no matching low
	// surrogate, then a null terminator; fields 1-10 are empty strings.
	body := []byte{0x00, 0xD8, 0x00, 0x00}
	for i := 0; i < 10; i++ {
		body = append(body, 0x00, 0x00)
	}
	lenBuf := make([]byte, 4)
	putU32LE(lenBuf, uint32(len(body)))
	data = append(data, lenBuf...)
	data = append(data, body...)

	_, err := decodeGD3(data, 0)
	if err == nil {
		t.Fatal("expected an error for an unpaired surrogate")
	}
	verr, ok := err.(*Error)
	if !ok || verr.Kind != KindInvalidUtf16 {
		t.Errorf("got err=%v, want KindInvalidUtf16", err)
	}
}

func TestDecodeGD3_WrongFieldCount(t *testing.T) {
	data := []byte("Gd3 ")
	data = append(data, 0, 1, 0, 0) // version 1.00
	body := []byte{0, 0}            // a single empty string, then nothing: only 1 of 11 fields
	lenBuf := make([]byte, 4)
	putU32LE(lenBuf, uint32(len(body)))
	data = append(data, lenBuf...)
	data = append(data, body...)

	if _, err := decodeGD3(data, 0); err == nil {
		t.Fatal("expected an error for too few GD3 fields")
	}
}
