// Package classify maps free text to one of the fixed emotions by counting
// lexicon keyword hits. It is pure: no I/O, no failure modes, identical
// output for identical input.
package classify

import (
	"strings"

	"github.com/arjunv/moodlog/internal/model"
)

// Analyze scores text against every emotion's keyword set and returns the
// winning emotion together with its fixed stress score.
//
// Zero matches, or a tie between two or more emotions for the highest
// count, resolve to model.Default. Selection iterates model.Emotions in
// canonical order so the result never depends on map iteration order.
func Analyze(text string) (model.Emotion, int) {
	lower := strings.ToLower(text)

	best := model.Default
	bestCount := 0
	tied := false
	for _, e := range model.Emotions {
		count := 0
		for _, word := range lexicon[e] {
			if strings.Contains(lower, word) {
				count++
			}
		}
		switch {
		case count > bestCount:
			best = e
			bestCount = count
			tied = false
		case count == bestCount && count > 0 && e != best:
			tied = true
		}
	}

	if bestCount == 0 || tied {
		best = model.Default
	}
	return best, best.Stress()
}
