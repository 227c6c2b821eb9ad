package vgmcore

import "unicode/utf16"

// GD3 is the decoded form of a GD3 metadata block: eleven UTF-16LE,
// null-terminated strings in a fixed order, per spec.md §4.5. English and
// original-language variants for track/game/system names are kept
// separate rather than merged, since callers need both.
type GD3 struct {
	VersionMajor uint8
	VersionMinor uint8

	TrackNameEN   string
	TrackNameJP   string
	GameNameEN    string
	GameNameJP    string
	SystemNameEN  string
	SystemNameJP  string
	ComposerEN    string
	ComposerJP    string
	ReleaseDate   string
	Converter     string
	Notes         string
}

const gd3FieldCount = 11

// decodeGD3 parses a GD3 block starting at absolute offset abs. The block's
// own 4-byte length field bounds every string read; it never trusts the
// enclosing file length beyond that.
func decodeGD3(data []byte, abs int) (*GD3, error) {
	if abs+12 > len(data) {
		return nil, newErr(KindTruncatedMetadata, int64(abs), "GD3 block needs a 12-byte prefix")
	}
	if string(data[abs:abs+4]) != "Gd3 " {
		return nil, newErr(KindBadMagic, int64(abs), "expected \"Gd3 \", got %q", data[abs:abs+4])
	}
	rawVersion, _ := readU32LE(data, abs+4)
	major, minor, err := decodeBCD32(rawVersion)
	if err != nil {
		return nil, err
	}
	length, _ := readU32LE(data, abs+8)
	bodyStart := abs + 12
	bodyEnd, ok := checkedAddInt(bodyStart, int(length))
	if !ok || bodyEnd > len(data) {
		return nil, newErr(KindSizeOverflow, int64(abs+8), "GD3 block declares length %d past end of file", length)
	}

	fields := make([]string, 0, gd3FieldCount)
	pos := bodyStart
	for len(fields) < gd3FieldCount {
		if pos >= bodyEnd {
			return nil, newErr(KindWrongFieldCount, int64(bodyStart), "GD3 block has %d fields, expected %d", len(fields), gd3FieldCount)
		}
		s, next, err := readUTF16ZString(data, pos, bodyEnd, len(fields))
		if err != nil {
			return nil, err
		}
		fields = append(fields, s)
		pos = next
	}
	if len(fields) != gd3FieldCount {
		return nil, newErr(KindWrongFieldCount, int64(bodyStart), "GD3 block has %d fields, expected %d", len(fields), gd3FieldCount)
	}

	return &GD3{
		VersionMajor: major,
		VersionMinor: minor,
		TrackNameEN:  fields[0],
		TrackNameJP:  fields[1],
		GameNameEN:   fields[2],
		GameNameJP:   fields[3],
		SystemNameEN: fields[4],
		SystemNameJP: fields[5],
		ComposerEN:   fields[6],
		ComposerJP:   fields[7],
		ReleaseDate:  fields[8],
		Converter:    fields[9],
		Notes:        fields[10],
	}, nil
}

// readUTF16ZString reads one null-terminated UTF-16LE string starting at
// off, not reading past bound, returning the decoded string and the offset
// just past its terminating code unit. fieldIndex identifies which of the
// eleven GD3 fields this is, for error reporting.
func readUTF16ZString(data []byte, off, bound, fieldIndex int) (string, int, error) {
	units := make([]uint16, 0, 16)
	pos := off
	for {
		u, ok := readU16LE(data, pos)
		if !ok || pos+2 > bound {
			return "", 0, newErr(KindTruncatedMetadata, int64(pos), "GD3 string ran past its block without a null terminator")
		}
		pos += 2
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	if err := validateUTF16Surrogates(units, fieldIndex, int64(off)); err != nil {
		return "", 0, err
	}
	return string(utf16.Decode(units)), pos, nil
}

// validateUTF16Surrogates rejects unpaired or misordered surrogate code
// units rather than letting utf16.Decode silently substitute U+FFFD for
// them, per spec.md §4.5.
func validateUTF16Surrogates(units []uint16, fieldIndex int, off int64) error {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return newErrExtra(KindInvalidUtf16, off, map[string]any{"field": fieldIndex},
					"GD3 field %d has a high surrogate without a matching low surrogate", fieldIndex)
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return newErrExtra(KindInvalidUtf16, off, map[string]any{"field": fieldIndex},
				"GD3 field %d has an unpaired low surrogate", fieldIndex)
		}
	}
	return nil
}

// encode serializes the GD3 block back to bytes, including its own 12-byte
// prefix, for round-trip writing.
func (g *GD3) encode() []byte {
	fields := []string{
		g.TrackNameEN, g.TrackNameJP, g.GameNameEN, g.GameNameJP,
		g.SystemNameEN, g.SystemNameJP, g.ComposerEN, g.ComposerJP,
		g.ReleaseDate, g.Converter, g.Notes,
	}
	var body []byte
	for _, f := range fields {
		for _, u := range utf16.Encode([]rune(f)) {
			buf := make([]byte, 2)
			putU16LE(buf, u)
			body = append(body, buf...)
		}
		body = append(body, 0x00, 0x00)
	}
	out := make([]byte, 12+len(body))
	copy(out[0:4], "Gd3 ")
	putU32LE(out[4:8], encodeBCD32(g.VersionMajor, g.VersionMinor))
	putU32LE(out[8:12], uint32(len(body)))
	copy(out[12:], body)
	return out
}
