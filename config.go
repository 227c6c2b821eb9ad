package vgmcore

// ParserConfig declares the resource budgets and feature switches a caller
// wants enforced for one parse. It is a plain struct, constructed directly
// by callers or loaded from YAML by cmd/vgminfo — there is no builder
// pattern, matching the teacher's flat-struct-literal construction style
// (NewPSGEngine, SIDHeader, ...).
type ParserConfig struct {
	// MaxTotalBytes bounds the sum of every data-block allocation made
	// during a parse. Zero means unlimited.
	MaxTotalBytes int `yaml:"max_total_bytes"`

	// MaxDataBlocks bounds the number of distinct data blocks (opcode
	// 0x67 occurrences) a stream may contain. Zero means unlimited.
	MaxDataBlocks int `yaml:"max_data_blocks"`

	// MaxBlockSize bounds the declared size of any single data block.
	// Zero means unlimited (not recommended for adversarial input).
	MaxBlockSize int `yaml:"max_block_size"`

	// MaxRecursionDepth bounds nested header structures (currently only
	// the extra header, but future header growth may add more).
	MaxRecursionDepth int `yaml:"max_recursion_depth"`

	// MaxCommands bounds how many commands the command decoder will
	// accept before failing, independent of byte budgets. Zero means
	// unlimited.
	MaxCommands int `yaml:"max_commands"`

	// StrictReservedRanges, when true, makes UnknownCommand fail even for
	// opcodes documented as reserved-for-future-use once their declared
	// operand width has been consumed, instead of emitting a Reserved
	// command. Defaults to false (forward-compatible).
	StrictReservedRanges bool `yaml:"strict_reserved_ranges"`
}

// DefaultParserConfig returns the budgets this package uses when a caller
// calls Parse, or passes the zero ParserConfig{} to ParseWithConfig — generous enough for any file
// conforming to the VGM 1.72 spec, tight enough to bound adversarial input.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		MaxTotalBytes:     256 * 1024 * 1024,
		MaxDataBlocks:     1 << 20,
		MaxBlockSize:      64 * 1024 * 1024,
		MaxRecursionDepth: 8,
		MaxCommands:       64 << 20,
	}
}

// withDefaults fills zero fields of cfg with DefaultParserConfig's values,
// so callers can override only the budgets they care about.
func (cfg ParserConfig) withDefaults() ParserConfig {
	d := DefaultParserConfig()
	if cfg.MaxTotalBytes == 0 {
		cfg.MaxTotalBytes = d.MaxTotalBytes
	}
	if cfg.MaxDataBlocks == 0 {
		cfg.MaxDataBlocks = d.MaxDataBlocks
	}
	if cfg.MaxBlockSize == 0 {
		cfg.MaxBlockSize = d.MaxBlockSize
	}
	if cfg.MaxRecursionDepth == 0 {
		cfg.MaxRecursionDepth = d.MaxRecursionDepth
	}
	if cfg.MaxCommands == 0 {
		cfg.MaxCommands = d.MaxCommands
	}
	return cfg
}
