package service_test

import (
	"testing"
	"time"

	"github.com/arjunv/moodlog/internal/model"
	"github.com/arjunv/moodlog/internal/service"
)

func TestSummarizeEntriesEmptySet(t *testing.T) {
	t.Parallel()

	s := service.SummarizeEntries(nil, "2026-03-02")
	if s.TotalEntries != 0 {
		t.Fatalf("expected total 0, got %d", s.TotalEntries)
	}
	if s.AverageStress != 0 {
		t.Fatalf("expected average 0, got %d", s.AverageStress)
	}
	if s.Dominant != model.Neutral {
		t.Fatalf("expected default dominant, got %s", s.Dominant)
	}
	if len(s.Counts) != len(model.Emotions) {
		t.Fatalf("expected %d zero-filled counts, got %d", len(model.Emotions), len(s.Counts))
	}
	for _, c := range s.Counts {
		if c.Count != 0 {
			t.Fatalf("expected zero count for %s, got %d", c.Emotion, c.Count)
		}
	}
}

func TestSummarizeEntriesCountsAverageAndDominant(t *testing.T) {
	t.Parallel()

	entries := []model.Entry{
		{Emotion: model.Motivated, Stress: 20, LoggedAt: time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)},
		{Emotion: model.Motivated, Stress: 20, LoggedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)},
		{Emotion: model.Stressed, Stress: 80, LoggedAt: time.Date(2026, 3, 2, 19, 0, 0, 0, time.Local)},
	}
	s := service.SummarizeEntries(entries, "2026-03-02")

	if s.TotalEntries != 3 {
		t.Fatalf("expected total 3, got %d", s.TotalEntries)
	}
	if s.AverageStress != 40 {
		t.Fatalf("expected average 40, got %d", s.AverageStress)
	}
	if s.Dominant != model.Motivated {
		t.Fatalf("expected dominant Motivated, got %s", s.Dominant)
	}
	for _, c := range s.Counts {
		want := 0
		switch c.Emotion {
		case model.Motivated:
			want = 2
		case model.Stressed:
			want = 1
		}
		if c.Count != want {
			t.Fatalf("expected count %d for %s, got %d", want, c.Emotion, c.Count)
		}
	}
	if len(s.Entries) != 3 || !s.Entries[0].LoggedAt.Before(s.Entries[2].LoggedAt) {
		t.Fatalf("expected chronological entries preserved")
	}
}

func TestSummarizeEntriesAverageRoundsToNearest(t *testing.T) {
	t.Parallel()

	entries := []model.Entry{
		{Emotion: model.Neutral, Stress: 35},
		{Emotion: model.Motivated, Stress: 20},
	}
	s := service.SummarizeEntries(entries, "")
	// (35+20)/2 = 27.5 rounds up.
	if s.AverageStress != 28 {
		t.Fatalf("expected average 28, got %d", s.AverageStress)
	}
}

func TestSummarizeEntriesDominantTieKeepsFixedOrder(t *testing.T) {
	t.Parallel()

	entries := []model.Entry{
		{Emotion: model.Stressed, Stress: 80},
		{Emotion: model.Energetic, Stress: 15},
	}
	s := service.SummarizeEntries(entries, "")
	// Energetic precedes Stressed in the canonical enumeration.
	if s.Dominant != model.Energetic {
		t.Fatalf("expected first-in-order dominant Energetic, got %s", s.Dominant)
	}
}

func TestSummarizeReadsFromStore(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	if _, err := service.LogQuick(db, model.Tired, at); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := service.LogQuick(db, model.Tired, at.Add(time.Hour)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := service.LogQuick(db, model.Angry, at.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("seed next day: %v", err)
	}

	s, err := service.Summarize(db, "2026-03-02")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.TotalEntries != 2 {
		t.Fatalf("expected 2 entries for the day, got %d", s.TotalEntries)
	}
	if s.Dominant != model.Tired {
		t.Fatalf("expected dominant Tired, got %s", s.Dominant)
	}
	if s.AverageStress != model.Tired.Stress() {
		t.Fatalf("expected average %d, got %d", model.Tired.Stress(), s.AverageStress)
	}
}
