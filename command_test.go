package vgmcore

import "testing"

func TestDecodeCommands_RegisterWritesAndWaits(t *testing.T) {
	stream := []byte{
		0xA0, 0x00, 0xFF, // YM2413 instance 1, reg 0 = 0xFF
		0xA0, 0x07, 0x3E, // YM2413 instance 1, reg 7 = 0x3E
		0x62,       // wait 735
		0x30, 0x00, // SN76489 instance 1 write
		0x66, // end
	}
	tracker := NewResourceTracker(DefaultParserConfig())
	banks := newDataBankTable()
	cmds, err := decodeCommands(stream, 0, tracker, DefaultParserConfig(), banks)
	if err != nil {
		t.Fatalf("decodeCommands: %v", err)
	}
	if len(cmds) != 5 {
		t.Fatalf("got %d commands, want 5", len(cmds))
	}
	rw0, ok := cmds[0].(RegisterWrite)
	if !ok {
		t.Fatalf("cmds[0] is %T, want RegisterWrite", cmds[0])
	}
	if rw0.ChipInstance != 1 || rw0.Register != 0x00 || rw0.Value != 0xFF {
		t.Errorf("cmds[0] = %+v", rw0)
	}
	if _, ok := cmds[2].(Wait); !ok {
		t.Errorf("cmds[2] is %T, want Wait", cmds[2])
	}
	if _, ok := cmds[4].(EndOfSoundData); !ok {
		t.Errorf("cmds[4] is %T, want EndOfSoundData", cmds[4])
	}
}

func TestDecodeCommands_GracefulReservedSkip(t *testing.T) {
	stream := []byte{
		0xA0, 0x00, 0xFF,
		0x51, 0x10, 0x20, // YM2413
		0xA0, 0x01, 0xAA,
		0xC9, 0x01, 0x02, 0x03, // reserved, 3 operand bytes
		0xA0, 0x07, 0x3E,
		0x62,
		0x66,
	}
	tracker := NewResourceTracker(DefaultParserConfig())
	banks := newDataBankTable()
	cmds, err := decodeCommands(stream, 0, tracker, DefaultParserConfig(), banks)
	if err != nil {
		t.Fatalf("decodeCommands: %v", err)
	}
	registerWrites := 0
	for _, c := range cmds {
		if _, ok := c.(RegisterWrite); ok {
			registerWrites++
		}
	}
	if registerWrites != 4 {
		t.Errorf("got %d register writes, want 4 (one YM2413 instance-0 write plus three YM2413 instance-1 writes)", registerWrites)
	}
}

func TestDecodeCommands_TruncatedOperandFails(t *testing.T) {
	// A 0xA0 register write cut off after its first operand byte must
	// report an error rather than panicking.
	stream := []byte{0xA0, 0x00}
	tracker := NewResourceTracker(DefaultParserConfig())
	banks := newDataBankTable()
	_, err := decodeCommands(stream, 0, tracker, DefaultParserConfig(), banks)
	if err == nil {
		t.Fatal("expected an error for a truncated register write")
	}
}

func TestEncodeRegisterWrite_RejectsInvalidChipInstance(t *testing.T) {
	v := RegisterWrite{baseCommand{0}, 0xA0, ChipYM2413, 2, 0, 0x00, 0xFF}
	_, err := encodeRegisterWrite(v)
	if err == nil {
		t.Fatal("expected an error for a chip instance of 2")
	}
	verr, ok := err.(*Error)
	if !ok || verr.Kind != KindInvalidChipIndex {
		t.Errorf("got err=%v, want KindInvalidChipIndex", err)
	}
}

func TestEncodeMemoryWrite_RejectsInvalidChipInstance(t *testing.T) {
	v := MemoryWrite{baseCommand{0}, 0xC0, ChipSegaPCM, 3, 0x100, 0x42}
	_, err := encodeMemoryWrite(v)
	if err == nil {
		t.Fatal("expected an error for a chip instance of 3")
	}
	verr, ok := err.(*Error)
	if !ok || verr.Kind != KindInvalidChipIndex {
		t.Errorf("got err=%v, want KindInvalidChipIndex", err)
	}
}

func TestDecodeCommands_StrictReservedRangesRejectsReservedOpcode(t *testing.T) {
	stream := []byte{0xC9, 0x01, 0x02, 0x03, 0x66}
	tracker := NewResourceTracker(DefaultParserConfig())
	banks := newDataBankTable()
	cfg := DefaultParserConfig()
	cfg.StrictReservedRanges = true

	_, err := decodeCommands(stream, 0, tracker, cfg, banks)
	if err == nil {
		t.Fatal("expected an error for a reserved opcode under StrictReservedRanges")
	}
	verr, ok := err.(*Error)
	if !ok || verr.Kind != KindUnknownCommand {
		t.Errorf("got err=%v, want KindUnknownCommand", err)
	}
}

func TestCommandRoundTrip(t *testing.T) {
	stream := []byte{
		0xA0, 0x00, 0xFF,
		0x51, 0x10, 0x20,
		0x61, 0x34, 0x12, // explicit u16 wait, not a packed short-form
		0x62,
		0xC0, 0x81, 0x82, 0x03, // Sega PCM, instance bit set in address high byte
		0xE1, 0x80, 0x02, 0xCD, 0xAB, // C352 write, 16-bit value
		0x66,
	}
	tracker := NewResourceTracker(DefaultParserConfig())
	banks := newDataBankTable()
	cmds, err := decodeCommands(stream, 0, tracker, DefaultParserConfig(), banks)
	if err != nil {
		t.Fatalf("decodeCommands: %v", err)
	}
	var out []byte
	for _, c := range cmds {
		b, err := encodeCommand(c)
		if err != nil {
			t.Fatalf("encodeCommand(%T): %v", c, err)
		}
		out = append(out, b...)
	}
	if string(out) != string(stream) {
		t.Errorf("round trip mismatch:\n got  % X\n want % X", out, stream)
	}
}
