package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordloop/internal/assets"
	"github.com/at-ishikawa/wordloop/internal/cli"
	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/pdf"
	"github.com/at-ishikawa/wordloop/internal/statistics"
)

// recordsSince is the lower bound used when every practice record is wanted.
var recordsSince = time.Unix(0, 0).UTC()

func newReportCommand() *cobra.Command {
	var learnerID, output string
	var toPDF bool

	command := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown progress report, optionally converted to PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			learnerID = learnerOrDefault(cfg, learnerID)
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = s.Close()
			}()

			now := time.Now().UTC()
			items, err := s.items.FindAll(cmd.Context(), learnerID)
			if err != nil {
				return fmt.Errorf("items.FindAll > %w", err)
			}
			records, err := s.records.FindBetween(cmd.Context(), learnerID, recordsSince, now.Add(time.Second))
			if err != nil {
				return fmt.Errorf("records.FindBetween > %w", err)
			}

			tmpl, err := assets.ParseReportTemplate(cfg.Templates.ReportTemplate)
			if err != nil {
				return err
			}
			var markdown bytes.Buffer
			if err := assets.WriteReport(&markdown, tmpl, statistics.BuildReport(learnerID, items, records, now)); err != nil {
				return err
			}

			if output == "" {
				output = filepath.Join(cfg.Outputs.ReportDirectory, fmt.Sprintf("%s-%s.md", learnerID, now.Format(time.DateOnly)))
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(output), err)
			}
			if err := os.WriteFile(output, markdown.Bytes(), 0644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", output, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)

			if !toPDF {
				return nil
			}
			pdfPath, err := pdf.ConvertMarkdownToPDF(output)
			if err != nil {
				return fmt.Errorf("pdf.ConvertMarkdownToPDF > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", pdfPath)
			return err
		},
	}
	command.Flags().StringVar(&learnerID, "learner", "", "learner id (defaults to learner.id in the config)")
	command.Flags().StringVarP(&output, "output", "o", "", "markdown output path (defaults to outputs.report_directory)")
	command.Flags().BoolVar(&toPDF, "pdf", false, "also convert the report to PDF")
	return command
}

func newAnalyzeCommand() *cobra.Command {
	var learnerID string
	var year, month int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show monthly/yearly statistics of the practice records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = s.Close()
			}()

			records, err := findRecordsUntil(cmd.Context(), s.records, learnerOrDefault(cfg, learnerID), year)
			if err != nil {
				return err
			}
			return cli.RunAnalyzeReport(cmd.OutOrStdout(), records, year, month)
		},
	}

	cmd.Flags().StringVar(&learnerID, "learner", "", "learner id (defaults to learner.id in the config)")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")

	return cmd
}

// findRecordsUntil returns the records up to the end of year, or all records when year is 0.
// Earlier records are kept because they decide whether a correct answer is a new word.
func findRecordsUntil(ctx context.Context, records learning.Repository, learnerID string, year int) ([]learning.PracticeRecord, error) {
	until := time.Now().UTC().Add(time.Second)
	if year != 0 {
		until = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	found, err := records.FindBetween(ctx, learnerID, recordsSince, until)
	if err != nil {
		return nil, fmt.Errorf("records.FindBetween > %w", err)
	}
	return found, nil
}
