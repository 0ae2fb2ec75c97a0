package cli

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/statistics"
)

// RunAnalyzeReport displays monthly statistics of the practice records
func RunAnalyzeReport(w io.Writer, records []learning.PracticeRecord, year, month int) error {
	result := statistics.CalculateStatistics(records, year, month)

	if len(result.Periods) == 0 {
		_, err := fmt.Fprintln(w, "No practice records found for the specified period.")
		return err
	}

	lines := []string{
		"Learning Statistics Report",
		"==========================",
		"",
		fmt.Sprintf("%-10s  %-10s  %-24s  %-24s", "Period", "Accuracy", "New Words (Total/Unique)", "Relearns (Total/Unique)"),
		fmt.Sprintf("%-10s  %-10s  %-24s  %-24s", "------", "--------", "------------------------", "-----------------------"),
	}
	for _, s := range result.Periods {
		lines = append(lines, fmt.Sprintf("%-10s  %-10s  %-24s  %-24s",
			s.Period,
			fmt.Sprintf("%.0f%%", s.Accuracy()*100),
			fmt.Sprintf("%d / %d", s.NewWordsCount, s.NewWordsUnique),
			fmt.Sprintf("%d / %d", s.RelearnsCount, s.RelearnsUnique),
		))
	}
	lines = append(lines, "", fmt.Sprintf("%-10s  %-10s  %-24s  %-24s",
		"Totals:",
		fmt.Sprintf("%.0f%%", result.Aggregate.Accuracy()*100),
		fmt.Sprintf("%d / %d", result.Aggregate.NewWordsCount, result.Aggregate.NewWordsUnique),
		fmt.Sprintf("%d / %d", result.Aggregate.RelearnsCount, result.Aggregate.RelearnsUnique),
	))

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
