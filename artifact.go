package vgmcore

// Artifact is the fully decoded form of one VGM/VGZ stream: header, ordered
// command list, per-chip data banks, optional GD3 metadata, and the
// validation findings collected along the way. It is the package's one
// externally visible parse result, per spec.md §3.
type Artifact struct {
	Header   *Header
	Commands []Command
	Banks    *DataBankTable
	GD3      *GD3

	Report *ValidationReport

	// WasGzipped records whether the input was VGZ-wrapped, so Serialize
	// can round-trip the wrapper choice by default.
	WasGzipped bool

	// rawLength is the length of the unwrapped file this artifact was
	// decoded from; Serialize uses it to size its output buffer.
	rawLength int
}

// Parse decodes a VGM or VGZ byte slice using the default ParserConfig.
func Parse(data []byte) (*Artifact, error) {
	return ParseWithConfig(data, DefaultParserConfig())
}

// ParseWithConfig decodes a VGM or VGZ byte slice under caller-supplied
// resource budgets, implementing the full pipeline of spec.md §4: gzip
// unwrap, header decode, interleaved command/data-block decode, GD3 decode,
// then validation. A malformed file returns a non-nil *Error; a structurally
// valid but semantically unusual file returns successfully with findings in
// Artifact.Report.
func ParseWithConfig(data []byte, cfg ParserConfig) (*Artifact, error) {
	cfg = cfg.withDefaults()

	wasGzipped := len(data) >= 2 && data[0] == gzipMagic[0] && data[1] == gzipMagic[1]
	unwrapped, err := unwrapGzip(data)
	if err != nil {
		return nil, err
	}

	tracker := NewResourceTracker(cfg)

	header, err := decodeHeader(unwrapped, tracker)
	if err != nil {
		return nil, err
	}

	banks := newDataBankTable()
	commands, err := decodeCommands(unwrapped, header.DataStartAbs, tracker, cfg, banks)
	if err != nil {
		return nil, err
	}

	var gd3 *GD3
	if header.GD3OffsetAbs.Present {
		gd3, err = decodeGD3(unwrapped, int(header.GD3OffsetAbs.Value))
		if err != nil {
			return nil, err
		}
	}

	report := validate(header, commands, banks)

	return &Artifact{
		Header:     header,
		Commands:   commands,
		Banks:      banks,
		GD3:        gd3,
		Report:     report,
		WasGzipped: wasGzipped,
		rawLength:  len(unwrapped),
	}, nil
}

// Serialize rebuilds the byte stream this Artifact represents: the header
// region, the command stream in order, and the GD3 tag if present. The
// result is gzip-wrapped again when Artifact.WasGzipped is true. For an
// Artifact returned by Parse and never mutated, Serialize reproduces the
// header region and command stream of the original input exactly, since
// every header byte this package does not interpret is carried through
// opaquely and every command retains its original opcode encoding choice.
// The GD3 tag is written directly after the end-of-data command; bytes of
// the input that follow the command stream other than the GD3 tag (a gap
// before the tag, or trailing padding) are not kept and are not written.
func (a *Artifact) Serialize() ([]byte, error) {
	out := append(make([]byte, 0, a.rawLength), a.Header.encode()...)

	for _, c := range a.Commands {
		b, err := encodeCommand(c)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}

	if a.GD3 != nil {
		out = append(out, a.GD3.encode()...)
	}

	if a.WasGzipped {
		return wrapGzip(out)
	}
	return out, nil
}
