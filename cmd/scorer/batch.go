package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/csvio"
	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/report"
)

type batchOptions struct {
	input  string
	output string
	format string
}

func batchCmd(opts *globalOptions, build sessionBuilder) *cobra.Command {
	bo := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score every domain in a CSV file and export the report",
		Long: "Reads a CSV with a \"domain\" column, scores each row in order and\n" +
			"writes the report as CSV (domain,score,tier) or JSON. Malformed rows\n" +
			"are skipped with a warning; failed lookups become unavailable rows.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := dto.ParseFormat(bo.format)
			if err != nil {
				return err
			}

			imp, err := readInput(cmd, bo.input)
			if err != nil {
				return err
			}

			rt, err := build(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			for _, s := range imp.Skipped {
				rt.logger.Warn("skipping csv row",
					slog.Int("line", s.Line),
					slog.String("value", s.Value),
					slog.String("reason", s.Reason),
				)
			}
			if len(imp.Domains) == 0 {
				return errors.New("input contains no valid domains")
			}

			rep, err := rt.service.ScoreBatch(cmd.Context(), imp.Domains)
			if err != nil {
				return fmt.Errorf("scoring batch: %w", err)
			}

			summary := rep.Summary()
			rt.logger.Info("batch scored",
				slog.Int("total", summary.Total),
				slog.Int("scored", summary.Scored),
				slog.Int("unavailable", summary.Unavailable),
				slog.Int("skipped", len(imp.Skipped)),
			)

			return writeOutput(cmd, bo.output, func(w io.Writer) error {
				return writeReport(w, format, rep, rt.topN, imp.Skipped)
			})
		},
	}

	cmd.Flags().StringVarP(&bo.input, "input", "i", "", "CSV file with a domain column (- for stdin)")
	cmd.Flags().StringVarP(&bo.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&bo.format, "format", "f", dto.FormatCSV, "output format: csv or json")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func readInput(cmd *cobra.Command, path string) (csvio.Import, error) {
	if path == "-" {
		return csvio.ReadDomains(cmd.InOrStdin())
	}

	f, err := os.Open(path)
	if err != nil {
		return csvio.Import{}, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	imp, err := csvio.ReadDomains(f)
	if err != nil {
		return csvio.Import{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return imp, nil
}

func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func writeReport(w io.Writer, format string, rep *report.Report, topN int, skipped []csvio.SkippedRow) error {
	if format == dto.FormatCSV {
		return csvio.WriteReport(w, rep)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToReportResponse(rep, topN, skipped))
}
