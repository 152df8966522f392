package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Ehmachado/rel6500-go/internal/history"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/output"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/parser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type analyzeFlags struct {
	outputPath string
	format     string
	pretty     bool
	top        int
	save       bool
	workers    int
}

func newAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [input.xlsx|input.csv]...",
		Short: "Extract and rank every mobilizer group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &flags)
			return runAnalyze(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: json, yaml, text")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().IntVar(&flags.top, "top", output.DefaultTop, "Entries per group in text output (0 = all)")
	cmd.Flags().BoolVar(&flags.save, "save", false, "Store results in the run history")
	cmd.Flags().IntVar(&flags.workers, "workers", 4, "Files analysed in parallel")
	return cmd
}

// applyConfigDefaults fills flags the user did not set from the config file.
func applyConfigDefaults(cmd *cobra.Command, flags *analyzeFlags) {
	if !cmd.Flags().Changed("format") {
		flags.format = cfg.Output.Format
	}
	if !cmd.Flags().Changed("pretty") {
		flags.pretty = cfg.Output.Pretty
	}
	if !cmd.Flags().Changed("top") {
		flags.top = cfg.Output.Top
	}
	if !cmd.Flags().Changed("save") {
		flags.save = cfg.History.Enabled
	}
	if !cmd.Flags().Changed("workers") {
		flags.workers = cfg.Batch.Workers
	}
}

func runAnalyze(cmd *cobra.Command, paths []string, flags analyzeFlags) error {
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", p)
		}
	}

	opts := mobrank.DefaultOptions()
	opts.Logger = logger
	opts.CSV = parser.CSVOptions{Encoding: cfg.Input.CSVEncoding}
	if r, _ := utf8.DecodeRuneInString(cfg.Input.CSVDelimiter); r != utf8.RuneError {
		opts.CSV.Comma = r
	}

	results, err := mobrank.AnalyzeFiles(cmd.Context(), paths, opts, flags.workers)
	if err != nil {
		return fmt.Errorf("analysis interrupted: %w", err)
	}

	data, err := render(results, flags)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if flags.save {
		if err := saveResults(cmd, results); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
	}

	failedCount := 0
	for _, r := range results {
		if r.Result == nil || !r.Result.Success {
			failedCount++
		}
	}
	if failedCount > 0 {
		return fmt.Errorf("%d of %d inputs failed", failedCount, len(results))
	}
	return nil
}

func render(results []mobrank.FileResult, flags analyzeFlags) ([]byte, error) {
	var v interface{} = results
	if len(results) == 1 {
		v = results[0].Result
	}

	switch strings.ToLower(flags.format) {
	case "json":
		data, err := output.ToJSON(v, flags.pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return output.ToYAML(v)
	case "text":
		lang, err := output.ParseLanguage(cfg.Output.Language)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", cfg.Output.Language, err)
		}
		var buf bytes.Buffer
		for i, r := range results {
			if i > 0 {
				io.WriteString(&buf, "\n")
			}
			if r.Result == nil {
				fmt.Fprintf(&buf, "Source: %s\nNot analysed\n", r.Path)
				continue
			}
			if err := output.WriteText(&buf, r.Result, output.TextOptions{Top: flags.top, Language: lang}); err != nil {
				return nil, err
			}
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json, yaml, or text)", flags.format)
	}
}

func saveResults(cmd *cobra.Command, results []mobrank.FileResult) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		if r.Result == nil {
			continue
		}
		runID, err := store.Save(cmd.Context(), r.Path, r.Result)
		if err != nil {
			return err
		}
		logger.Info("run saved", zap.String("run_id", runID), zap.String("path", r.Path))
	}
	return nil
}
