package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/learning"
)

func TestRunAnalyzeReport(t *testing.T) {
	records := []learning.PracticeRecord{
		{VocabularyID: 1, IsCorrect: true, AnsweredAt: time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)},
		{VocabularyID: 1, IsCorrect: true, AnsweredAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		{VocabularyID: 2, IsCorrect: false, AnsweredAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name         string
		records      []learning.PracticeRecord
		year         int
		month        int
		wantContains []string
	}{
		{
			name:    "all periods",
			records: records,
			wantContains: []string{
				"Learning Statistics Report",
				"2025-05     100%",
				"2025-06     50%",
				"Totals:     67%",
			},
		},
		{
			name:         "filtered by month",
			records:      records,
			year:         2025,
			month:        6,
			wantContains: []string{"2025-06", "0 / 0                     1 / 1"},
		},
		{
			name:         "no records",
			wantContains: []string{"No practice records found for the specified period."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, RunAnalyzeReport(&out, tt.records, tt.year, tt.month))
			for _, want := range tt.wantContains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
