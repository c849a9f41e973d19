// Package main provides the CLI entry point for schedgrid-go.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/schedgrid-go/internal/config"
	"github.com/ukaji3/schedgrid-go/internal/logger"
	"github.com/ukaji3/schedgrid-go/pkg/schedgrid"
	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/models"
	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/output"
)

var (
	outputPath string
	pretty     bool
	format     string
	source     string
	sheet      string
	selector   string
	daysDir    string
	logLevel   string
	logFormat  string
)

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schedgrid [input.html|input.xlsx|input.csv]",
		Short: "Extract weekly class schedules from tabular grids",
		Long: `schedgrid-go reads a class offerings table (HTML, xlsx or csv),
rebuilds each class record with its meeting times and lays the records out
on a Monday to Saturday timeline.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", cfg.Format, "Output format: json, yaml, csv")
	rootCmd.Flags().StringVar(&source, "source", cfg.Source, "Input kind: auto, html, xlsx, csv")
	rootCmd.Flags().StringVar(&sheet, "sheet", cfg.Sheet, "Worksheet to read for xlsx input (default: active sheet)")
	rootCmd.Flags().StringVar(&selector, "selector", cfg.TableSelector, "CSS selector of the schedule table for html input")
	rootCmd.Flags().StringVar(&daysDir, "days-dir", "", "Directory for per-day layout files")
	rootCmd.Flags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format: json, pretty")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg := &config.Config{
		LogLevel:      logLevel,
		LogFormat:     logFormat,
		Format:        format,
		Source:        source,
		Sheet:         sheet,
		TableSelector: selector,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	src, err := schedgrid.ParseSource(cfg.Source)
	if err != nil {
		return fmt.Errorf("invalid source: %s (must be auto, html, xlsx, or csv)", cfg.Source)
	}

	opts := schedgrid.Options{
		Source:        src,
		Sheet:         cfg.Sheet,
		TableSelector: cfg.TableSelector,
		Logger:        &log,
	}

	// Extract data
	tt, err := schedgrid.Extract(inputPath, opts)
	if err != nil {
		if errors.Is(err, schedgrid.ErrFileNotFound) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	// Serialize
	data, err := output.Encode(tt, output.Format(cfg.Format), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Info().Str("path", outputPath).Msg("wrote timetable")
	} else if daysDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	// Write per-day files
	if daysDir != "" {
		if err := writeDayFiles(tt, daysDir, log); err != nil {
			return fmt.Errorf("failed to write day files: %w", err)
		}
	}

	return nil
}

// writeDayFiles writes one JSON file per weekday layout. Nothing is written
// when the timetable has no records.
func writeDayFiles(tt *models.Timetable, dir string, log zerolog.Logger) error {
	if len(tt.Days) == 0 {
		log.Warn().Str("dir", dir).Msg("no layout to write")
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, day := range tt.Days {
		jsonData, err := output.ToJSON(day, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, day.Day.Name()+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
		log.Debug().Str("path", filename).Int("blocks", len(day.Blocks)).Msg("wrote day layout")
	}

	return nil
}
