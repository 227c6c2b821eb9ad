package vgmcore

import "testing"

func TestValidate_FlagsImplausibleClock(t *testing.T) {
	h := &Header{
		VersionMajor: 1, VersionMinor: 0x72,
		DataStartAbs: 0x80, EOFOffsetAbs: 0x100,
		ChipClocks: map[ChipKind]ChipClock{
			ChipAY8910: {FrequencyHz: 200_000_000},
		},
	}
	report := validate(h, []Command{EndOfSoundData{}}, newDataBankTable())
	found := false
	for _, issue := range report.Issues {
		if issue.Kind == KindInvalidClock && issue.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning for a 200 MHz clock, got %+v", report.Issues)
	}
}

func TestValidate_FlagsLoopOffsetOutsideDataRange(t *testing.T) {
	h := &Header{
		VersionMajor: 1, VersionMinor: 0x72,
		DataStartAbs:  0x80,
		EOFOffsetAbs:  0x100,
		LoopOffsetAbs: some(uint32(0x200)), // past EOFOffsetAbs
		LoopSamples:   1000,
	}
	report := validate(h, []Command{EndOfSoundData{}}, newDataBankTable())
	found := false
	for _, issue := range report.Issues {
		if issue.Kind == KindOffsetOutOfRange && issue.Offset == 0x200 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an out-of-range warning for the loop offset, got %+v", report.Issues)
	}
}

func TestValidate_FlagsFieldPredatingDeclaredVersion(t *testing.T) {
	h := &Header{
		VersionMajor:   1,
		VersionMinor:   0x50, // v1.50, predates the extra header (v1.70+)
		DataStartAbs:   0x80,
		EOFOffsetAbs:   0x100,
		ExtraHeaderOffsetAbs: some(uint32(0x90)),
	}
	report := validate(h, []Command{EndOfSoundData{}}, newDataBankTable())
	found := false
	for _, issue := range report.Issues {
		if issue.Kind == KindWrongFieldCount {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a version-gated-field warning, got %+v", report.Issues)
	}
}
