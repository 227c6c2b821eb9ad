package vgmcore

// ChipClockOverride is one entry of the extra header's chip-clock-override
// list, used to give a second instance of a dual-chip setup its own clock.
type ChipClockOverride struct {
	ChipID  uint8
	ClockHz uint32
}

// ChipVolumeAdjustment is one entry of the extra header's chip-volume list.
type ChipVolumeAdjustment struct {
	ChipID     uint8 // bit 7 already split into PairedChip below
	PairedChip bool
	SecondChip bool
	Volume     uint16 // bit 15 already split into Relative below
	Relative   bool
}

// RelativeMultiplier returns the volume as a multiplier (1.0 == unchanged)
// when Relative is set; it panics if Relative is false, since an absolute
// volume has no multiplier interpretation.
func (v ChipVolumeAdjustment) RelativeMultiplier() float64 {
	if !v.Relative {
		panic("vgmcore: RelativeMultiplier called on an absolute ChipVolumeAdjustment")
	}
	return float64(v.Volume&0x7FFF) / 256.0
}

// ExtraHeader is the v1.70+ header-size-prefixed structure carrying the two
// optional sub-lists described in spec.md §3.
type ExtraHeader struct {
	HeaderSize        uint32
	ClockOverrides    []ChipClockOverride
	VolumeAdjustments []ChipVolumeAdjustment
}

// decodeExtraHeader parses the structure at absolute offset abs, bounding
// every read by its own declared HeaderSize (never by the outer file length
// alone) so a short declared size can't be used to read into unrelated
// header bytes.
func decodeExtraHeader(data []byte, abs int) (*ExtraHeader, error) {
	headerSize, ok := readU32LE(data, abs)
	if !ok {
		return nil, newErr(KindTruncatedHeader, int64(abs), "extra header size field truncated")
	}
	end, ok := checkedAddInt(abs, int(headerSize))
	if !ok || end > len(data) {
		return nil, newErr(KindOffsetOutOfRange, int64(abs), "extra header declares size %d past end of file", headerSize)
	}

	eh := &ExtraHeader{HeaderSize: headerSize}

	clockOff, ok := readU32LE(data, abs+4)
	if ok && clockOff != 0 {
		listAbs := abs + 4 + int(clockOff)
		list, err := decodeChipClockList(data, listAbs, end)
		if err != nil {
			return nil, err
		}
		eh.ClockOverrides = list
	}

	volOff, ok := readU32LE(data, abs+8)
	if ok && volOff != 0 {
		listAbs := abs + 8 + int(volOff)
		list, err := decodeChipVolumeList(data, listAbs, end)
		if err != nil {
			return nil, err
		}
		eh.VolumeAdjustments = list
	}

	return eh, nil
}

func decodeChipClockList(data []byte, listAbs, bound int) ([]ChipClockOverride, error) {
	count, ok := readU8(data, listAbs)
	if !ok || listAbs+1 > bound {
		return nil, newErr(KindTruncatedHeader, int64(listAbs), "chip clock override count truncated")
	}
	entries := make([]ChipClockOverride, 0, count)
	off := listAbs + 1
	for i := 0; i < int(count); i++ {
		if off+5 > bound {
			return nil, newErr(KindTruncatedHeader, int64(off), "chip clock override entry %d truncated", i)
		}
		chipID, _ := readU8(data, off)
		clock, _ := readU32LE(data, off+1)
		entries = append(entries, ChipClockOverride{ChipID: chipID, ClockHz: clock})
		off += 5
	}
	return entries, nil
}

func decodeChipVolumeList(data []byte, listAbs, bound int) ([]ChipVolumeAdjustment, error) {
	count, ok := readU8(data, listAbs)
	if !ok || listAbs+1 > bound {
		return nil, newErr(KindTruncatedHeader, int64(listAbs), "chip volume adjustment count truncated")
	}
	entries := make([]ChipVolumeAdjustment, 0, count)
	off := listAbs + 1
	for i := 0; i < int(count); i++ {
		if off+4 > bound {
			return nil, newErr(KindTruncatedHeader, int64(off), "chip volume adjustment entry %d truncated", i)
		}
		chipIDByte, _ := readU8(data, off)
		flags, _ := readU8(data, off+1)
		volume, _ := readU16LE(data, off+2)
		entries = append(entries, ChipVolumeAdjustment{
			ChipID:     chipIDByte & 0x7F,
			PairedChip: chipIDByte&0x80 != 0,
			SecondChip: flags&0x01 != 0,
			Volume:     volume & 0x7FFF,
			Relative:   volume&0x8000 != 0,
		})
		off += 4
	}
	return entries, nil
}
