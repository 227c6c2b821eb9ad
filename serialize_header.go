package vgmcore

// encode rebuilds the header byte region by starting from the raw
// bytes captured at decode time and overwriting only the ranges this
// package models, mirroring decodeHeader field-for-field. Bytes this
// package never interprets (reserved gaps, fields past DataStartAbs)
// survive untouched, so a header that was never mutated after Parse
// reproduces byte-for-byte.
func (h *Header) encode() []byte {
	out := append([]byte(nil), h.rawHeaderBytes...)
	fileLen := len(out)
	dataStart := h.DataStartAbs
	visible := func(off, w int) bool { return fieldVisible(off, w, dataStart, fileLen) }

	putU32LE(out[offVersion:], encodeBCD32(h.VersionMajor, h.VersionMinor))
	putU32LE(out[offEOFOffset:], h.EOFOffsetAbs-uint32(offEOFOffset))

	if visible(offGD3Offset, 4) {
		if h.GD3OffsetAbs.Present {
			putU32LE(out[offGD3Offset:], h.GD3OffsetAbs.Value-uint32(offGD3Offset))
		} else {
			putU32LE(out[offGD3Offset:], 0)
		}
	}
	if visible(offTotalSamples, 4) {
		putU32LE(out[offTotalSamples:], h.TotalSamples)
	}
	if visible(offLoopOffset, 4) {
		if h.LoopOffsetAbs.Present {
			putU32LE(out[offLoopOffset:], h.LoopOffsetAbs.Value-uint32(offLoopOffset))
		} else {
			putU32LE(out[offLoopOffset:], 0)
		}
	}
	if visible(offLoopSamples, 4) {
		putU32LE(out[offLoopSamples:], h.LoopSamples)
	}
	if visible(offRateHz, 4) {
		putU32LE(out[offRateHz:], h.RateHz)
	}
	if visible(offPSGFeedback, 2) && h.PSGFeedback.Present {
		putU16LE(out[offPSGFeedback:], h.PSGFeedback.Value)
	}
	if visible(offPSGShiftReg, 1) && h.PSGShiftRegisterWidth.Present {
		out[offPSGShiftReg] = h.PSGShiftRegisterWidth.Value
	}
	if visible(offPSGFlags, 1) && h.PSGFlags.Present {
		out[offPSGFlags] = h.PSGFlags.Value
	}

	for chip, off := range clockFieldOffsets {
		if !visible(off, 4) {
			continue
		}
		cf, ok := h.ChipClocks[chip]
		if !ok {
			continue
		}
		raw := clockField{FrequencyHz: cf.FrequencyHz, DualChip: cf.DualChip, Variant: cf.Variant}.encode()
		putU32LE(out[off:], raw)
	}

	writeU8 := func(off int, w int, opt Optional[uint8]) {
		if visible(off, w) && opt.Present {
			out[off] = opt.Value
		}
	}
	writeU8(offAY8910Type, 1, h.AY8910Type)
	writeU8(offAY8910Flags, 1, h.AY8910Flags)
	writeU8(offYM2203AY, 1, h.YM2203AYFlags)
	writeU8(offYM2608AY, 1, h.YM2608AYFlags)
	if visible(offVolumeMod, 1) && h.VolumeModifier.Present {
		out[offVolumeMod] = byte(h.VolumeModifier.Value)
	}
	if visible(offLoopBase, 1) && h.LoopBase.Present {
		out[offLoopBase] = byte(h.LoopBase.Value)
	}
	writeU8(offLoopModifier, 1, h.LoopModifier)
	writeU8(offOKIM6258Flag, 1, h.OKIM6258Flags)
	writeU8(offK054539Flag, 1, h.K054539Flags)
	writeU8(offC140Type, 1, h.C140Type)
	writeU8(offES5503Chans, 1, h.ES5503Channels)
	writeU8(offES5506Chans, 1, h.ES5506Channels)
	writeU8(offC352Divider, 1, h.C352ClockDivider)

	if visible(offExtraHeader, 4) {
		if h.ExtraHeaderOffsetAbs.Present {
			putU32LE(out[offExtraHeader:], h.ExtraHeaderOffsetAbs.Value-uint32(offExtraHeader))
		} else {
			putU32LE(out[offExtraHeader:], 0)
		}
	}

	return out
}
