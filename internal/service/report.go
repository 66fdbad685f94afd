package service

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

const (
	reportTitle    = "EMOTIONAL TONE & STRESS ANALYZER"
	reportBarWidth = 24
)

// RenderReport formats a summary into the daily text report. Output is a
// pure function of the summary: no clock reads, no randomness, so two
// calls with equal input produce byte-identical documents.
func RenderReport(s *DailySummary) string {
	label := s.Date
	if label == "" {
		label = "All Time"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", reportTitle, label)
	b.WriteString(strings.Repeat("=", 50))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total: %d | Avg stress: %d/100 | Dominant: %s\n", s.TotalEntries, s.AverageStress, s.Dominant)

	b.WriteString("\nEntries\n")
	if len(s.Entries) == 0 {
		b.WriteString("(none)\n")
	}
	for i, e := range s.Entries {
		fmt.Fprintf(&b, "%d. [%s] %s (%d)", i+1, e.LoggedAt.Format("15:04"), e.Emotion, e.Stress)
		if e.Text != "" && !IsQuickText(e.Text) {
			b.WriteByte(' ')
			b.WriteString(e.Text)
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nDistribution\n")
	maxCount := 0
	for _, c := range s.Counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}
	for _, c := range s.Counts {
		fmt.Fprintf(&b, "%-12s %s %d\n", c.Emotion, countBar(c.Count, maxCount, reportBarWidth), c.Count)
	}

	return b.String()
}

// countBar scales count against the set maximum to a fixed width. A
// non-zero count always shows at least one mark.
func countBar(count, maxCount, width int) string {
	if count <= 0 || maxCount <= 0 || width <= 0 {
		return ""
	}
	marks := int(math.Round((float64(count) / float64(maxCount)) * float64(width)))
	if marks == 0 {
		marks = 1
	}
	return strings.Repeat("#", marks)
}

// ReportFileName derives the per-day file name; repeated saves on the
// same date target the same file and overwrite it.
func ReportFileName(date string) string {
	if date == "" {
		date = "all-time"
	}
	return fmt.Sprintf("report_%s.txt", date)
}

// SaveReport renders the summary and writes it under dir, creating the
// directory when missing. It returns the written path.
func SaveReport(s *DailySummary, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}
	path := filepath.Join(dir, ReportFileName(s.Date))
	if err := os.WriteFile(path, []byte(RenderReport(s)), 0o644); err != nil {
		return "", fmt.Errorf("write report to %q: %w", path, err)
	}
	return path, nil
}
