package service

import (
	"database/sql"
	"math"

	"github.com/arjunv/moodlog/internal/model"
)

type EmotionCount struct {
	Emotion model.Emotion `json:"emotion"`
	Count   int           `json:"count"`
}

// DailySummary is the aggregate view over one day (or all time when Date
// is empty). Counts always cover the full fixed emotion set, zero-filled,
// in canonical order; Entries stay chronological.
type DailySummary struct {
	Date          string         `json:"date,omitempty"`
	TotalEntries  int            `json:"total_entries"`
	AverageStress int            `json:"average_stress"`
	Dominant      model.Emotion  `json:"dominant_emotion"`
	Counts        []EmotionCount `json:"counts"`
	Entries       []model.Entry  `json:"entries"`
}

// Summarize loads entries for the given day ("" for all time) and reduces
// them into a DailySummary.
func Summarize(db *sql.DB, date string) (*DailySummary, error) {
	entries, err := ListEntries(db, ListEntriesFilter{Date: date})
	if err != nil {
		return nil, err
	}
	return SummarizeEntries(entries, date), nil
}

// SummarizeEntries is the pure aggregation core. An empty entry set is a
// valid input and yields a zero-filled summary with the default emotion
// dominant.
func SummarizeEntries(entries []model.Entry, date string) *DailySummary {
	s := &DailySummary{
		Date:    date,
		Entries: entries,
		Counts:  make([]EmotionCount, 0, len(model.Emotions)),
	}

	byEmotion := make(map[model.Emotion]int, len(model.Emotions))
	stressSum := 0
	for _, e := range entries {
		byEmotion[e.Emotion]++
		stressSum += e.Stress
	}
	for _, e := range model.Emotions {
		s.Counts = append(s.Counts, EmotionCount{Emotion: e, Count: byEmotion[e]})
	}

	s.TotalEntries = len(entries)
	if s.TotalEntries > 0 {
		s.AverageStress = int(math.Round(float64(stressSum) / float64(s.TotalEntries)))
	}
	s.Dominant = dominantEmotion(s.Counts)
	return s
}

// dominantEmotion keeps the first maximum while walking the canonical
// order, so ties resolve to the earlier-declared emotion and an all-zero
// count set resolves to the default.
func dominantEmotion(counts []EmotionCount) model.Emotion {
	best := model.Default
	bestCount := 0
	for _, c := range counts {
		if c.Count > bestCount {
			best = c.Emotion
			bestCount = c.Count
		}
	}
	return best
}
