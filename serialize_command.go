package vgmcore

// encodeCommand inverts decodeCommands for one Command, reproducing the
// exact bytes that would have decoded to it. Every concrete Command type
// retains enough information (including, where the opcode space is
// ambiguous, the original Opcode byte) to make this exact rather than
// merely equivalent.
func encodeCommand(c Command) ([]byte, error) {
	switch v := c.(type) {
	case RegisterWrite:
		return encodeRegisterWrite(v)
	case MemoryWrite:
		return encodeMemoryWrite(v)
	case Wait:
		return encodeWait(v)
	case Ym2612DacStepWait:
		return []byte{0x80 | v.N}, nil
	case SeekPcm:
		out := make([]byte, 5)
		out[0] = 0xE0
		putU32LE(out[1:], v.PCMOffset)
		return out, nil
	case DataBlockCommand:
		return encodeDataBlockCommand(v)
	case PCMRAMWrite:
		out := make([]byte, 12)
		out[0], out[1] = 0x68, 0x66
		out[2] = v.ChipType
		size := v.Size
		if size == 0x01000000 {
			size = 0
		}
		putU24LE(out[3:6], v.ReadOffset)
		putU24LE(out[6:9], v.WriteOffset)
		putU24LE(out[9:12], size)
		return out, nil
	case DACStreamSetup:
		return []byte{0x90, v.StreamID, v.ChipType, v.Port, v.Command}, nil
	case DACStreamSetData:
		return []byte{0x91, v.StreamID, v.DataBankID, v.StepSize, v.StepBase}, nil
	case DACStreamSetFrequency:
		out := make([]byte, 6)
		out[0], out[1] = 0x92, v.StreamID
		putU32LE(out[2:], v.FreqHz)
		return out, nil
	case DACStreamStart:
		out := make([]byte, 11)
		out[0], out[1] = 0x93, v.StreamID
		putU32LE(out[2:], v.DataStart)
		out[6] = v.LengthMode
		putU32LE(out[7:], v.Length)
		return out, nil
	case DACStreamStop:
		return []byte{0x94, v.StreamID}, nil
	case DACStreamStartFast:
		out := make([]byte, 5)
		out[0], out[1] = 0x95, v.StreamID
		putU16LE(out[2:4], v.BlockID)
		out[4] = v.Flags
		return out, nil
	case EndOfSoundData:
		return []byte{0x66}, nil
	case Reserved:
		out := make([]byte, 1+len(v.Operands))
		out[0] = v.Opcode
		copy(out[1:], v.Operands)
		return out, nil
	default:
		return nil, newErr(KindUnknownCommand, -1, "unknown command type %T", c)
	}
}

func encodeWait(v Wait) ([]byte, error) {
	switch v.Opcode {
	case 0x61:
		out := make([]byte, 3)
		out[0] = 0x61
		putU16LE(out[1:], v.Samples)
		return out, nil
	case 0x62, 0x63:
		return []byte{v.Opcode}, nil
	default:
		if v.Opcode >= 0x70 && v.Opcode <= 0x7F {
			return []byte{v.Opcode}, nil
		}
		return nil, newErr(KindUnknownCommand, v.Offset(), "wait command has unrecognized opcode 0x%02X", v.Opcode)
	}
}

// checkChipInstance rejects instance values above 1, per spec.md §4.4 ("Invalid
// chip-instance values (>1) are rejected"). Without this, a ChipInstance of 2
// wraps silently when shifted into bit 7 (2<<7 mod 256 == 0) and corrupts the
// emitted byte instead of failing loudly.
func checkChipInstance(instance uint8, offset int64) error {
	if instance > 1 {
		return newErr(KindInvalidChipIndex, offset, "chip instance %d is invalid (must be 0 or 1)", instance)
	}
	return nil
}

func encodeRegisterWrite(v RegisterWrite) ([]byte, error) {
	if err := checkChipInstance(v.ChipInstance, v.Offset()); err != nil {
		return nil, err
	}
	switch {
	case v.Opcode == 0x30 || v.Opcode == 0x4F || v.Opcode == 0x50:
		return []byte{v.Opcode, v.Value}, nil
	case v.Opcode == 0x31:
		return []byte{v.Opcode, v.Value}, nil
	case v.Opcode == 0x40:
		return []byte{v.Opcode, v.ChipInstance<<7 | v.Register, v.Value}, nil
	case v.Opcode >= 0x51 && v.Opcode <= 0x5F, v.Opcode >= 0xA0 && v.Opcode <= 0xAE:
		return []byte{v.Opcode, v.Register, v.Value}, nil
	case v.Opcode >= 0xB0 && v.Opcode <= 0xBF:
		return []byte{v.Opcode, v.ChipInstance<<7 | v.Register, v.Value}, nil
	case v.Opcode >= 0xD0 && v.Opcode <= 0xD6:
		return []byte{v.Opcode, v.ChipInstance<<7 | v.Port, v.Register, v.Value}, nil
	default:
		return nil, newErr(KindUnknownCommand, v.Offset(), "register write has unrecognized opcode 0x%02X", v.Opcode)
	}
}

func encodeMemoryWrite(v MemoryWrite) ([]byte, error) {
	if err := checkChipInstance(v.ChipInstance, v.Offset()); err != nil {
		return nil, err
	}
	switch {
	case v.Opcode == 0xC0:
		addrHi := uint8(v.Address >> 8)
		return []byte{v.Opcode, uint8(v.Address), v.ChipInstance<<7 | addrHi, uint8(v.Value)}, nil
	case v.Opcode >= 0xC1 && v.Opcode <= 0xC8:
		b1 := uint8(v.Address)
		b2 := uint8(v.Address >> 8)
		return []byte{v.Opcode, v.ChipInstance<<7 | b1, b2, uint8(v.Value)}, nil
	case v.Opcode == 0xE1:
		b1 := uint8(v.Address >> 8)
		b2 := uint8(v.Address)
		out := make([]byte, 5)
		out[0] = v.Opcode
		out[1] = v.ChipInstance<<7 | b1
		out[2] = b2
		putU16LE(out[3:5], v.Value)
		return out, nil
	default:
		return nil, newErr(KindUnknownCommand, v.Offset(), "memory write has unrecognized opcode 0x%02X", v.Opcode)
	}
}

func encodeDataBlockCommand(v DataBlockCommand) ([]byte, error) {
	b := v.Block
	out := make([]byte, 7+len(b.Body))
	out[0], out[1] = 0x67, 0x66
	out[2] = b.TypeByte
	putU32LE(out[3:7], b.RawSize)
	copy(out[7:], b.Body)
	return out, nil
}
