package service_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arjunv/moodlog/internal/model"
	"github.com/arjunv/moodlog/internal/service"
)

func sampleSummary() *service.DailySummary {
	entries := []model.Entry{
		{ID: 1, Text: "focused on my goal", Emotion: model.Motivated, Stress: 20, LoggedAt: time.Date(2026, 3, 2, 8, 15, 0, 0, time.Local)},
		{ID: 2, Text: "[Quick: Motivated]", Emotion: model.Motivated, Stress: 20, LoggedAt: time.Date(2026, 3, 2, 12, 30, 0, 0, time.Local)},
		{ID: 3, Text: "deadline pressure", Emotion: model.Stressed, Stress: 80, LoggedAt: time.Date(2026, 3, 2, 19, 0, 0, 0, time.Local)},
	}
	return service.SummarizeEntries(entries, "2026-03-02")
}

func TestRenderReportDeterministic(t *testing.T) {
	t.Parallel()

	first := service.RenderReport(sampleSummary())
	second := service.RenderReport(sampleSummary())
	if first != second {
		t.Fatalf("expected byte-identical reports across calls")
	}
}

func TestRenderReportContents(t *testing.T) {
	t.Parallel()

	out := service.RenderReport(sampleSummary())

	if !strings.Contains(out, "EMOTIONAL TONE & STRESS ANALYZER - 2026-03-02") {
		t.Fatalf("missing header with date:\n%s", out)
	}
	if !strings.Contains(out, "Total: 3 | Avg stress: 40/100 | Dominant: Motivated") {
		t.Fatalf("missing summary block:\n%s", out)
	}
	if !strings.Contains(out, "1. [08:15] Motivated (20) focused on my goal") {
		t.Fatalf("missing first entry line:\n%s", out)
	}
	// Quick-tap sentinel text stays out of the listing.
	if !strings.Contains(out, "2. [12:30] Motivated (20)\n") {
		t.Fatalf("expected quick entry without sentinel text:\n%s", out)
	}
	// Motivated holds the maximum (2), so its bar spans the full width;
	// Stressed (1) gets half.
	if !strings.Contains(out, "Motivated    "+strings.Repeat("#", 24)+" 2") {
		t.Fatalf("expected full-width bar for Motivated:\n%s", out)
	}
	if !strings.Contains(out, "Stressed     "+strings.Repeat("#", 12)+" 1") {
		t.Fatalf("expected half-width bar for Stressed:\n%s", out)
	}
	if !strings.Contains(out, "Energetic    ") {
		t.Fatalf("expected zero-count emotion to still appear:\n%s", out)
	}
}

func TestRenderReportEmptySummary(t *testing.T) {
	t.Parallel()

	out := service.RenderReport(service.SummarizeEntries(nil, "2026-03-02"))
	if !strings.Contains(out, "Total: 0 | Avg stress: 0/100 | Dominant: Neutral") {
		t.Fatalf("unexpected empty summary block:\n%s", out)
	}
	if !strings.Contains(out, "(none)") {
		t.Fatalf("expected empty listing marker:\n%s", out)
	}
}

func TestSaveReportOverwritesSameDay(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "daily_reports")

	first, err := service.SaveReport(sampleSummary(), dir)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	smaller := service.SummarizeEntries([]model.Entry{
		{Emotion: model.Sad, Stress: 65, LoggedAt: time.Date(2026, 3, 2, 21, 0, 0, 0, time.Local)},
	}, "2026-03-02")
	second, err := service.SaveReport(smaller, dir)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first != second {
		t.Fatalf("expected same path for same day, got %q and %q", first, second)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read reports dir: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected one report file, got %d", len(files))
	}
	if files[0].Name() != "report_2026-03-02.txt" {
		t.Fatalf("unexpected report file name %s", files[0].Name())
	}

	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Total: 1") {
		t.Fatalf("expected second save to overwrite content:\n%s", data)
	}
}
