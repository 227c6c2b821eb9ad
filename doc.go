// Package vgmcore decodes and re-encodes VGM/VGZ chiptune command streams.
//
// A VGM stream is a time-ordered log of register writes, memory writes and
// timing waits aimed at one or more emulated sound chips, wrapped in a
// versioned header and optionally followed by a GD3 metadata tag. The
// package consumes an in-memory byte slice (optionally gzip-wrapped) and
// produces an owned, structured Artifact; Artifact.Serialize inverts that
// for any artifact this package produced from a well-formed input.
//
// Audio synthesis, chip emulation and file I/O are deliberately not this
// package's job — it only understands the container.
package vgmcore
