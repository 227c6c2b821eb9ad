package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/vgmforge/vgmcore"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "vgminfo",
		Short: "vgminfo — inspect and round-trip VGM/VGZ chiptune streams",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML ParserConfig file")

	infoCmd := &cobra.Command{
		Use:   "info <file.vgm|file.vgz>",
		Short: "Decode a file and print its header, chip usage, and data banks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(logger, args[0], configPath)
		},
	}
	rootCmd.AddCommand(infoCmd)

	var strict bool
	validateCmd := &cobra.Command{
		Use:   "validate <file.vgm|file.vgz>",
		Short: "Decode a file and print its validation findings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(logger, args[0], configPath, strict)
		},
	}
	validateCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero if validation finds any warning")
	rootCmd.AddCommand(validateCmd)

	var outPath string
	roundtripCmd := &cobra.Command{
		Use:   "roundtrip <file.vgm|file.vgz>",
		Short: "Decode then re-serialize a file, for verifying this package's fidelity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundtrip(logger, args[0], outPath, configPath)
		},
	}
	roundtripCmd.Flags().StringVar(&outPath, "o", "", "output path (default: stdout)")
	rootCmd.AddCommand(roundtripCmd)

	gd3Cmd := &cobra.Command{
		Use:   "gd3 <file.vgm|file.vgz>",
		Short: "Print a file's GD3 metadata tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGD3(logger, args[0], configPath)
		},
	}
	rootCmd.AddCommand(gd3Cmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func loadArtifact(path, configPath string) (*vgmcore.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return vgmcore.ParseWithConfig(data, cfg)
}

func runInfo(logger *log.Logger, path, configPath string) error {
	art, err := loadArtifact(path, configPath)
	if err != nil {
		return err
	}

	h := art.Header
	fmt.Printf("version:       %d.%02x\n", h.VersionMajor, h.VersionMinor)
	fmt.Printf("data start:    0x%X\n", h.DataStartAbs)
	fmt.Printf("eof offset:    0x%X\n", h.EOFOffsetAbs)
	fmt.Printf("total samples: %d\n", h.TotalSamples)
	fmt.Printf("loop samples:  %d\n", h.LoopSamples)
	fmt.Printf("commands:      %d\n", len(art.Commands))
	fmt.Printf("gzip-wrapped:  %v\n", art.WasGzipped)

	fmt.Println("chips:")
	for chip, clock := range h.KnownChipClocks() {
		if clock.FrequencyHz == 0 {
			continue
		}
		fmt.Printf("  %-12s %9d Hz  dual=%v variant=%v\n", chip, clock.FrequencyHz, clock.DualChip, clock.Variant)
	}

	fmt.Println("data banks:")
	for chip, bank := range art.Banks.Banks {
		fmt.Printf("  %-12s stream=%d bytes, rom-fragments=%d, ram-writes=%d\n",
			chip, len(bank.Data), len(bank.RomFragments), len(bank.RamWrites))
	}
	return nil
}

func runValidate(logger *log.Logger, path, configPath string, strict bool) error {
	art, err := loadArtifact(path, configPath)
	if err != nil {
		return err
	}

	for _, issue := range art.Report.Issues {
		if issue.Severity == vgmcore.SeverityWarning {
			logger.Warn(issue.Message, "kind", issue.Kind, "offset", issue.Offset)
		} else {
			logger.Debug(issue.Message, "kind", issue.Kind, "offset", issue.Offset)
		}
	}

	if strict && art.Report.HasWarnings() {
		return fmt.Errorf("%s: validation reported warnings", path)
	}
	return nil
}

func runRoundtrip(logger *log.Logger, path, outPath, configPath string) error {
	art, err := loadArtifact(path, configPath)
	if err != nil {
		return err
	}
	out, err := art.Serialize()
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	logger.Info("wrote round-tripped file", "path", outPath, "bytes", len(out))
	return os.WriteFile(outPath, out, 0o644)
}

func runGD3(logger *log.Logger, path, configPath string) error {
	art, err := loadArtifact(path, configPath)
	if err != nil {
		return err
	}
	if art.GD3 == nil {
		logger.Warn("file has no GD3 metadata tag")
		return nil
	}
	g := art.GD3
	fmt.Printf("track:   %s / %s\n", g.TrackNameEN, g.TrackNameJP)
	fmt.Printf("game:    %s / %s\n", g.GameNameEN, g.GameNameJP)
	fmt.Printf("system:  %s / %s\n", g.SystemNameEN, g.SystemNameJP)
	fmt.Printf("author:  %s / %s\n", g.ComposerEN, g.ComposerJP)
	fmt.Printf("date:    %s\n", g.ReleaseDate)
	fmt.Printf("ripped by: %s\n", g.Converter)
	fmt.Printf("notes:   %s\n", g.Notes)
	return nil
}
