package main

import (
	"os"

	"github.com/vgmforge/vgmcore"
	"gopkg.in/yaml.v3"
)

// loadConfig reads a YAML ParserConfig from path. Fields the file does not
// set stay at their zero value in the returned config; ParseWithConfig then
// replaces zero budgets with vgmcore.DefaultParserConfig()'s values. An
// empty path returns the defaults untouched.
func loadConfig(path string) (vgmcore.ParserConfig, error) {
	if path == "" {
		return vgmcore.DefaultParserConfig(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return vgmcore.ParserConfig{}, err
	}
	var cfg vgmcore.ParserConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return vgmcore.ParserConfig{}, err
	}
	return cfg, nil
}
