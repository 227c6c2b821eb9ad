package vgmcore

import (
	"bytes"
	"compress/gzip"
	"io"
)

var gzipMagic = []byte{0x1F, 0x8B}

// unwrapGzip transparently decompresses a VGZ-wrapped VGM payload, mirroring
// the teacher's readVGMData (vgm_parser.go): sniff the two-byte gzip magic,
// and if present, decompress the whole stream before any header parsing
// happens. Input that is not gzip-wrapped is returned unchanged.
func unwrapGzip(data []byte) ([]byte, error) {
	if len(data) < 2 || !bytes.Equal(data[:2], gzipMagic) {
		return data, nil
	}
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, newErr(KindBadMagic, 0, "gzip-wrapped input failed to open: %v", err)
	}
	defer gz.Close()
	out, err := io.ReadAll(gz)
	if err != nil {
		return nil, newErr(KindTruncatedHeader, 0, "gzip-wrapped input failed to decompress: %v", err)
	}
	return out, nil
}

// wrapGzip compresses data as a VGZ payload, the inverse of unwrapGzip.
func wrapGzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, newErr(KindFeatureNotSupported, 0, "failed to gzip-wrap output: %v", err)
	}
	if err := gz.Close(); err != nil {
		return nil, newErr(KindFeatureNotSupported, 0, "failed to finalize gzip-wrapped output: %v", err)
	}
	return buf.Bytes(), nil
}
