package vgmcore

// BankContribution records where one stream data block's bytes landed
// inside its chip's consolidated DataBank, so DAC stream control command
// 0x95 can select a block by ordinal (spec.md §3/§4.3).
type BankContribution struct {
	StartOffset int
	Length      int
}

// RomFragment is one ROM-dump data block's contribution to a chip; unlike
// stream blocks, ROM fragments are not concatenated — each keeps its own
// declared start address (spec.md §4.3: "multiple fragments of the same
// chip coexist").
type RomFragment struct {
	Offset       int64
	TotalRomSize uint32
	StartAddress uint32
	Data         []byte
}

// RamWriteRecord is one RAM-write data block's contribution to a chip.
type RamWriteRecord struct {
	Offset       int64
	StartAddress uint32
	Is32Bit      bool
	Data         []byte
}

// DataBank is the per-chip consolidation spec.md §3 calls for: stream data
// blocks of the same chip concatenate into Data; ROM and RAM writes keep
// their fragments distinct.
type DataBank struct {
	Chip          ChipKind
	Data          []byte
	Contributions []BankContribution
	RomFragments  []RomFragment
	RamWrites     []RamWriteRecord
}

type decompTableKey struct {
	BitsCompressed uint8
	SubType        CompressionSubType
}

// DataBankTable is the fold accumulator threaded through command decoding:
// (accumulator, data-block) -> accumulator', per the pure-fold design note
// in spec.md §9.
type DataBankTable struct {
	Banks  map[ChipKind]*DataBank
	Tables map[decompTableKey]*DataBlock
}

func newDataBankTable() *DataBankTable {
	return &DataBankTable{
		Banks:  make(map[ChipKind]*DataBank),
		Tables: make(map[decompTableKey]*DataBlock),
	}
}

func (t *DataBankTable) bankFor(chip ChipKind) *DataBank {
	b, ok := t.Banks[chip]
	if !ok {
		b = &DataBank{Chip: chip}
		t.Banks[chip] = b
	}
	return b
}

// known ROM-dump and RAM-write sub-type-to-chip tables. Anything absent
// from these maps still decodes structurally (spec.md §4.3's "forward
// compatibility" clause) but is flagged DataBlock.UnknownKind.
var romDumpChipByType = map[uint8]ChipKind{
	0x80: ChipSegaPCM, 0x81: ChipYM2608, 0x82: ChipYM2610, 0x83: ChipYM2610,
	0x84: ChipYMF278B, 0x85: ChipYMF271, 0x86: ChipYMZ280B, 0x87: ChipYMF278B,
	0x88: ChipY8950, 0x89: ChipMultiPCM, 0x8A: ChipUPD7759, 0x8B: ChipOKIM6295,
	0x8C: ChipK054539, 0x8D: ChipC140, 0x8E: ChipK053260, 0x8F: ChipQSound,
	0x90: ChipES5506, 0x91: ChipX1010, 0x92: ChipC352, 0x93: ChipGA20,
}

var ramWrite16ChipByType = map[uint8]ChipKind{
	0xC0: ChipRF5C68,
	0xC1: ChipRF5C164,
}

var ramWrite32ChipByType = map[uint8]ChipKind{
	0xE0: ChipSCSP,
	0xE1: ChipES5503,
}

// Accumulate classifies and folds one opcode-0x67 occurrence's decoded
// fields into the bank table, enforcing resource budgets along the way.
// offset is the absolute byte offset of the 0x67 opcode itself, used for
// error/diagnostic reporting.
func (t *DataBankTable) Accumulate(tracker *ResourceTracker, offset int64, typeByte uint8, sizeField uint32, body []byte) (*DataBlock, error) {
	category := classifyDataBlockType(typeByte)

	switch category {
	case CategoryUncompressedStream:
		chip, ok := uncompressedStreamChipByType[typeByte]
		if !ok {
			return nil, newErr(KindInvalidDataBlock, offset, "unknown uncompressed stream data block type 0x%02X", typeByte)
		}
		guard, err := tracker.Reserve(len(body), offset)
		if err != nil {
			return nil, err
		}
		bank := t.bankFor(chip)
		start := len(bank.Data)
		bank.Data = append(bank.Data, body...)
		bank.Contributions = append(bank.Contributions, BankContribution{StartOffset: start, Length: len(body)})
		guard.Commit()
		return &DataBlock{Offset: offset, TypeByte: typeByte, Category: category, Chip: chip, RawSize: sizeField, Body: body}, nil

	case CategoryCompressedStream:
		baseType := typeByte - 0x40
		chip, ok := uncompressedStreamChipByType[baseType]
		if !ok {
			return nil, newErr(KindInvalidDataBlock, offset, "unknown compressed stream data block type 0x%02X", typeByte)
		}
		header, err := decodeCompressionHeader(body, offset, body)
		if err != nil {
			return nil, err
		}
		payload := body[10:]
		guard, err := tracker.Reserve(len(payload), offset)
		if err != nil {
			return nil, err
		}
		bank := t.bankFor(chip)
		start := len(bank.Data)
		bank.Data = append(bank.Data, payload...)
		bank.Contributions = append(bank.Contributions, BankContribution{StartOffset: start, Length: len(payload)})
		guard.Commit()
		return &DataBlock{
			Offset: offset, TypeByte: typeByte, Category: category, Chip: chip,
			Compression: &header, RawSize: sizeField, Body: body,
		}, nil

	case CategoryDecompressionTable:
		header, err := decodeCompressionHeader(body, offset, body)
		if err != nil {
			return nil, err
		}
		entryBytes := body[10:]
		entries := make([]uint16, 0, len(entryBytes)/2)
		for i := 0; i+2 <= len(entryBytes); i += 2 {
			v, _ := readU16LE(entryBytes, i)
			entries = append(entries, v)
		}
		block := &DataBlock{
			Offset: offset, TypeByte: typeByte, Category: category,
			TableHeader: &header, TableEntries: entries, RawSize: sizeField, Body: body,
		}
		key := decompTableKey{BitsCompressed: header.BitsCompressed, SubType: header.SubType}
		t.Tables[key] = block // a later table supersedes an earlier one
		return block, nil

	case CategoryRomDump:
		if len(body) < 8 {
			return nil, newErr(KindTruncatedCommandStream, offset, "ROM dump data block needs an 8-byte prefix, got %d bytes", len(body))
		}
		totalRomSize, _ := readU32LE(body, 0)
		startAddress, _ := readU32LE(body, 4)
		payload := body[8:]
		chip, known := romDumpChipByType[typeByte]
		guard, err := tracker.Reserve(len(payload), offset)
		if err != nil {
			return nil, err
		}
		bank := t.bankFor(chip)
		bank.RomFragments = append(bank.RomFragments, RomFragment{
			Offset: offset, TotalRomSize: totalRomSize, StartAddress: startAddress, Data: payload,
		})
		guard.Commit()
		return &DataBlock{
			Offset: offset, TypeByte: typeByte, Category: category, Chip: chip,
			TotalRomSize: totalRomSize, StartAddress: startAddress, Body: body,
			UnknownKind: !known,
		}, nil

	case CategoryRamWrite16:
		if len(body) < 2 {
			return nil, newErr(KindTruncatedCommandStream, offset, "16-bit RAM write data block needs a 2-byte address, got %d bytes", len(body))
		}
		addr16, _ := readU16LE(body, 0)
		payload := body[2:]
		chip, known := ramWrite16ChipByType[typeByte]
		guard, err := tracker.Reserve(len(payload), offset)
		if err != nil {
			return nil, err
		}
		bank := t.bankFor(chip)
		bank.RamWrites = append(bank.RamWrites, RamWriteRecord{Offset: offset, StartAddress: uint32(addr16), Data: payload})
		guard.Commit()
		return &DataBlock{
			Offset: offset, TypeByte: typeByte, Category: category, Chip: chip,
			StartAddress: uint32(addr16), Body: body, UnknownKind: !known,
		}, nil

	case CategoryRamWrite32:
		if len(body) < 4 {
			return nil, newErr(KindTruncatedCommandStream, offset, "32-bit RAM write data block needs a 4-byte address, got %d bytes", len(body))
		}
		addr32, _ := readU32LE(body, 0)
		payload := body[4:]
		chip, known := ramWrite32ChipByType[typeByte]
		guard, err := tracker.Reserve(len(payload), offset)
		if err != nil {
			return nil, err
		}
		bank := t.bankFor(chip)
		bank.RamWrites = append(bank.RamWrites, RamWriteRecord{Offset: offset, StartAddress: addr32, Is32Bit: true, Data: payload})
		guard.Commit()
		return &DataBlock{
			Offset: offset, TypeByte: typeByte, Category: category, Chip: chip,
			StartAddress: addr32, Body: body, UnknownKind: !known,
		}, nil
	}

	return nil, newErr(KindInvalidDataBlock, offset, "unreachable data block category for type 0x%02X", typeByte)
}
