package vgmcore

// DataBlockCategory is the coarse classification of a data block's type
// byte, per spec.md §3.
type DataBlockCategory int

const (
	CategoryUncompressedStream DataBlockCategory = iota
	CategoryCompressedStream
	CategoryDecompressionTable
	CategoryRomDump
	CategoryRamWrite16
	CategoryRamWrite32
)

// classifyDataBlockType maps a data block's type byte ("tt") to its
// category per spec.md §3's six kinds.
func classifyDataBlockType(tt uint8) DataBlockCategory {
	switch {
	case tt <= 0x3F:
		return CategoryUncompressedStream
	case tt <= 0x7E:
		return CategoryCompressedStream
	case tt == 0x7F:
		return CategoryDecompressionTable
	case tt <= 0xBF:
		return CategoryRomDump
	case tt <= 0xDF:
		return CategoryRamWrite16
	default:
		return CategoryRamWrite32
	}
}

// uncompressedStreamChipByType maps a stream data block's type byte (for
// compressed streams, the type byte minus 0x40) to the chip kind whose
// bank it belongs to. A stream type absent from this map is rejected by
// Accumulate with KindInvalidDataBlock.
var uncompressedStreamChipByType = map[uint8]ChipKind{
	0x00: ChipYM2612, // YM2612 PCM DAC data (data bank 0)
	0x01: ChipRF5C68,
	0x02: ChipRF5C164,
	0x03: ChipPWM,
	0x04: ChipOKIM6258,
	0x06: ChipHuC6280,
	0x07: ChipSCSP,
	0x08: ChipNESAPU,
	0x09: ChipMultiPCM,
	0x0A: ChipUPD7759,
	0x0B: ChipOKIM6295,
	0x0C: ChipK054539,
	0x0D: ChipC140,
	0x0E: ChipK053260,
	0x0F: ChipQSound,
	0x10: ChipES5506,
	0x11: ChipX1010,
	0x12: ChipC352,
	0x13: ChipGA20,
}

// CompressionSubType distinguishes the bit-packing compression variants
// per spec.md §3.
type CompressionSubType int

const (
	SubTypeCopy CompressionSubType = iota
	SubTypeShiftLeft
	SubTypeTable
)

// CompressionHeader is either a BitPacking or a DPCM header, distinguished
// by IsDPCM. Modeled as one flat struct (rather than an interface) because
// the two forms share almost every field and spec.md §9 requires the
// header survive round-trip opaquely regardless of form.
type CompressionHeader struct {
	IsDPCM          bool
	BitsDecompressed uint8
	BitsCompressed   uint8
	SubType          CompressionSubType // BitPacking only
	ValueAdded       uint16             // BitPacking only
	StartValue       uint16             // DPCM only
}

func decodeCompressionHeader(data []byte, off int64, body []byte) (CompressionHeader, error) {
	if len(body) < 10 {
		return CompressionHeader{}, newErr(KindTruncatedCommandStream, off, "compression header needs 10 bytes, got %d", len(body))
	}
	bitsDecompressed := body[0]
	bitsCompressed := body[1]
	subTypeByte := body[2]
	valueOrStart, _ := readU16LE(body, 3)
	// Reserved bytes 5..9 (5 bytes) are not modeled; the block's raw Body
	// still holds them, so they round-trip unchanged.
	switch subTypeByte {
	case 0x00, 0x01, 0x02:
		return CompressionHeader{
			IsDPCM:           false,
			BitsDecompressed: bitsDecompressed,
			BitsCompressed:   bitsCompressed,
			SubType:          CompressionSubType(subTypeByte),
			ValueAdded:       valueOrStart,
		}, nil
	case 0x03:
		return CompressionHeader{
			IsDPCM:           true,
			BitsDecompressed: bitsDecompressed,
			BitsCompressed:   bitsCompressed,
			StartValue:       valueOrStart,
		}, nil
	default:
		return CompressionHeader{}, newErr(KindInvalidCompressionSubType, off, "unknown compression sub-type 0x%02X", subTypeByte)
	}
}

func (c CompressionHeader) encode() []byte {
	out := make([]byte, 10)
	out[0] = c.BitsDecompressed
	out[1] = c.BitsCompressed
	if c.IsDPCM {
		out[2] = 0x03
		putU16LE(out[3:5], c.StartValue)
	} else {
		out[2] = byte(c.SubType)
		putU16LE(out[3:5], c.ValueAdded)
	}
	return out
}

// DataBlock is the decoded form of one opcode-0x67 occurrence, per
// spec.md §3/§4.3.
type DataBlock struct {
	Offset   int64
	TypeByte uint8
	Category DataBlockCategory

	Chip         ChipKind // UncompressedStream / CompressedStream / RomDump
	Compression  *CompressionHeader
	RawSize      uint32 // declared size field, before any interpretation
	Body         []byte // whole raw body, including any compression header, ROM prefix or RAM address

	// RomDump
	TotalRomSize  uint32
	StartAddress  uint32

	// RamWrite16 / RamWrite32 reuse StartAddress (16-bit values still fit).

	// DecompressionTable
	TableHeader  *CompressionHeader
	TableEntries []uint16

	UnknownKind bool // true when TypeByte fell in a forward-compatible unknown slot
}
