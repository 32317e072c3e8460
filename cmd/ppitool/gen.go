package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/tools/imports"

	"nrfppi/internal/logger"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [metadata.yaml ...]",
		Short: "Generate chip tables from chip metadata",
		Long: `Reads chip metadata YAML and writes <output>/<package>/table_gen.go for each chip.
With no arguments every *.yaml file in the metadata directory is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(args, viper.GetString("metadata"), viper.GetString("output"))
		},
	}
	cmd.Flags().String("metadata", "chip/metadata", "directory of chip metadata YAML files")
	cmd.Flags().String("output", "chip", "root directory for generated packages")
	_ = viper.BindPFlag("metadata", cmd.Flags().Lookup("metadata"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runGen(files []string, metadataDir, outputDir string) error {
	log := logger.Named("gen")
	if len(files) == 0 {
		matches, err := filepath.Glob(filepath.Join(metadataDir, "*.yaml"))
		if err != nil {
			return fmt.Errorf("listing %s: %w", metadataDir, err)
		}
		if len(matches) == 0 {
			return fmt.Errorf("no metadata files in %s", metadataDir)
		}
		sort.Strings(matches)
		files = matches
	}

	for _, path := range files {
		m, err := LoadChipMeta(path)
		if err != nil {
			return err
		}
		code, err := GenerateChip(m, filepath.Base(path))
		if err != nil {
			return fmt.Errorf("generating %s: %w", m.Chip, err)
		}
		dir := filepath.Join(outputDir, m.Package)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		out := filepath.Join(dir, "table_gen.go")
		if err := writeFormatted(out, code); err != nil {
			return err
		}
		log.Info().
			Str("chip", m.Chip).
			Int("domains", len(m.Domains)).
			Int("peripherals", len(m.Peripherals)).
			Str("file", out).
			Msg("generated")
	}
	return nil
}

// formatSource runs goimports over code as if it lived at path.
func formatSource(path, code string) ([]byte, error) {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		return nil, fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return formatted, nil
}

func writeFormatted(path, code string) error {
	formatted, err := formatSource(path, code)
	if err != nil {
		// Keep the raw output around to debug the template.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return err
	}
	return os.WriteFile(path, formatted, 0o644)
}
