package vgmcore

import "testing"

func TestAccumulate_UncompressedStream(t *testing.T) {
	tracker := NewResourceTracker(DefaultParserConfig())
	banks := newDataBankTable()

	body := []byte{0x01, 0x02, 0x03, 0x04}
	block, err := banks.Accumulate(tracker, 0x100, 0x00, uint32(len(body)), body)
	if err != nil {
		t.Fatalf("Accumulate: %v", err)
	}
	if block.Chip != ChipYM2612 || block.Category != CategoryUncompressedStream {
		t.Errorf("block = %+v", block)
	}
	bank := banks.Banks[ChipYM2612]
	if string(bank.Data) != string(body) {
		t.Errorf("bank.Data = % X, want % X", bank.Data, body)
	}

	// a second block of the same chip concatenates rather than replaces.
	body2 := []byte{0xAA, 0xBB}
	if _, err := banks.Accumulate(tracker, 0x200, 0x00, uint32(len(body2)), body2); err != nil {
		t.Fatalf("Accumulate (2nd): %v", err)
	}
	if len(bank.Data) != len(body)+len(body2) {
		t.Errorf("bank.Data length = %d, want %d", len(bank.Data), len(body)+len(body2))
	}
}

func TestAccumulate_UnknownStreamTypeFails(t *testing.T) {
	tracker := NewResourceTracker(DefaultParserConfig())
	banks := newDataBankTable()
	_, err := banks.Accumulate(tracker, 0, 0x05, 1, []byte{0x00})
	if err == nil {
		t.Fatal("expected an error for an unmapped uncompressed-stream type byte")
	}
	verr, ok := err.(*Error)
	if !ok || verr.Kind != KindInvalidDataBlock {
		t.Errorf("got err=%v, want KindInvalidDataBlock", err)
	}
}

func TestAccumulate_RomDumpKeepsFragmentsDistinct(t *testing.T) {
	tracker := NewResourceTracker(DefaultParserConfig())
	banks := newDataBankTable()

	body1 := append([]byte{0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, []byte{0xDE, 0xAD}...)
	if _, err := banks.Accumulate(tracker, 0, 0x80, uint32(len(body1)), body1); err != nil {
		t.Fatalf("Accumulate: %v", err)
	}
	body2 := append([]byte{0x00, 0x10, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}, []byte{0xBE, 0xEF}...)
	if _, err := banks.Accumulate(tracker, 1, 0x80, uint32(len(body2)), body2); err != nil {
		t.Fatalf("Accumulate: %v", err)
	}

	bank := banks.Banks[ChipSegaPCM]
	if len(bank.RomFragments) != 2 {
		t.Fatalf("got %d ROM fragments, want 2", len(bank.RomFragments))
	}
	if bank.RomFragments[0].StartAddress != 0 || bank.RomFragments[1].StartAddress != 2 {
		t.Errorf("fragment start addresses = %d, %d", bank.RomFragments[0].StartAddress, bank.RomFragments[1].StartAddress)
	}
}

func TestAccumulate_ResourceLimitEnforced(t *testing.T) {
	cfg := DefaultParserConfig()
	cfg.MaxTotalBytes = 2
	tracker := NewResourceTracker(cfg)
	banks := newDataBankTable()

	body := []byte{0x01, 0x02, 0x03}
	_, err := banks.Accumulate(tracker, 0, 0x00, uint32(len(body)), body)
	if err == nil {
		t.Fatal("expected an allocation-limit error")
	}
	verr, ok := err.(*Error)
	if !ok || verr.Kind != KindAllocationLimitExceeded {
		t.Errorf("got err=%v, want KindAllocationLimitExceeded", err)
	}
}
