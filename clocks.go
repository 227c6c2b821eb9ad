package vgmcore

// ChipKind identifies one of the sound chips a VGM stream may address,
// either via a header clock field, a command-stream register write, or a
// data-block chip tag. Modeled as a small int enum in the teacher's style
// (LineType/OperandType in cmd/ie32to64/converter.go) rather than strings,
// since chip identity is compared far more often than printed.
type ChipKind int

const (
	ChipUnknown ChipKind = iota
	ChipSN76489
	ChipYM2413
	ChipYM2612
	ChipYM2151
	ChipSegaPCM
	ChipRF5C68
	ChipYM2203
	ChipYM2608
	ChipYM2610
	ChipYM3812
	ChipYM3526
	ChipY8950
	ChipYMF262
	ChipYMF278B
	ChipYMF271
	ChipYMZ280B
	ChipRF5C164
	ChipPWM
	ChipAY8910
	ChipGameBoyDMG
	ChipNESAPU
	ChipMultiPCM
	ChipUPD7759
	ChipOKIM6258
	ChipOKIM6295
	ChipK051649
	ChipK054539
	ChipHuC6280
	ChipC140
	ChipK053260
	ChipPokey
	ChipQSound
	ChipSCSP
	ChipWonderSwan
	ChipVSU
	ChipSAA1099
	ChipES5503
	ChipES5506
	ChipX1010
	ChipC352
	ChipGA20
	ChipMikey
)

func (c ChipKind) String() string {
	if s, ok := chipNames[c]; ok {
		return s
	}
	return "unknown"
}

var chipNames = map[ChipKind]string{
	ChipSN76489:    "SN76489",
	ChipYM2413:     "YM2413",
	ChipYM2612:     "YM2612",
	ChipYM2151:     "YM2151",
	ChipSegaPCM:    "SegaPCM",
	ChipRF5C68:     "RF5C68",
	ChipYM2203:     "YM2203",
	ChipYM2608:     "YM2608",
	ChipYM2610:     "YM2610",
	ChipYM3812:     "YM3812",
	ChipYM3526:     "YM3526",
	ChipY8950:      "Y8950",
	ChipYMF262:     "YMF262",
	ChipYMF278B:    "YMF278B",
	ChipYMF271:     "YMF271",
	ChipYMZ280B:    "YMZ280B",
	ChipRF5C164:    "RF5C164",
	ChipPWM:        "PWM",
	ChipAY8910:     "AY8910",
	ChipGameBoyDMG: "GameBoyDMG",
	ChipNESAPU:     "NESAPU",
	ChipMultiPCM:   "MultiPCM",
	ChipUPD7759:    "uPD7759",
	ChipOKIM6258:   "OKIM6258",
	ChipOKIM6295:   "OKIM6295",
	ChipK051649:    "K051649",
	ChipK054539:    "K054539",
	ChipHuC6280:    "HuC6280",
	ChipC140:       "C140",
	ChipK053260:    "K053260",
	ChipPokey:      "Pokey",
	ChipQSound:     "QSound",
	ChipSCSP:       "SCSP",
	ChipWonderSwan: "WonderSwan",
	ChipVSU:        "VSU",
	ChipSAA1099:    "SAA1099",
	ChipES5503:     "ES5503",
	ChipES5506:     "ES5506",
	ChipX1010:      "X1-010",
	ChipC352:       "C352",
	ChipGA20:       "GA20",
	ChipMikey:      "Mikey",
}

// dualChipCapable lists the chips spec.md §4.6 allows a dual-chip bit to be
// set on; validate.go flags the bit being set on any other chip.
var dualChipCapable = map[ChipKind]bool{
	ChipSN76489: true, ChipYM2413: true, ChipYM2612: true, ChipYM2151: true,
	ChipSegaPCM: true, ChipRF5C68: true, ChipYM2203: true, ChipYM2608: true,
	ChipYM2610: true, ChipYM3812: true, ChipYM3526: true, ChipY8950: true,
	ChipYMF262: true, ChipYMF278B: true, ChipYMF271: true, ChipYMZ280B: true,
	ChipRF5C164: true, ChipAY8910: true, ChipGameBoyDMG: true, ChipNESAPU: true,
	ChipMultiPCM: true, ChipUPD7759: true, ChipOKIM6258: true, ChipOKIM6295: true,
	ChipK051649: true, ChipK054539: true, ChipHuC6280: true, ChipC140: true,
	ChipK053260: true, ChipPokey: true, ChipQSound: true, ChipSCSP: true,
	ChipWonderSwan: true, ChipVSU: true, ChipSAA1099: true, ChipES5503: true,
	ChipES5506: true, ChipX1010: true, ChipC352: true, ChipGA20: true,
}

// Named clock-frequency constants for common hardware, in the style of the
// teacher's psg_constants.go (PSG_CLOCK_ATARI_ST, PSG_CLOCK_ZX_SPECTRUM,
// ...). They are exported for callers; no code in this module refers to
// them, and the parser itself never hard-codes a particular source
// machine's clock.
const (
	ClockHzZXSpectrumAY uint32 = 1773400
	ClockHzAtariSTAY    uint32 = 2000000
	ClockHzMSXAY        uint32 = 1789773
	ClockHzGenesisYM2612 uint32 = 7670453
	ClockHzGenesisSN76489 uint32 = 3579545
	ClockHzMasterSystemSN uint32 = 3579545
	ClockHzArcadeYM2151 uint32 = 3579545
)

// ChipClock is the decoded form of a header clock field: frequency plus the
// two overloaded flag bits, per spec.md §3.
type ChipClock struct {
	FrequencyHz uint32
	DualChip    bool
	Variant     bool
}
