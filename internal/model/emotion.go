package model

import (
	"fmt"
	"strings"
)

// Emotion is one of the eight fixed mood labels tracked by moodlog.
type Emotion string

const (
	Energetic   Emotion = "Energetic"
	Motivated   Emotion = "Motivated"
	Neutral     Emotion = "Neutral"
	Tired       Emotion = "Tired"
	Sad         Emotion = "Sad"
	Angry       Emotion = "Angry"
	Stressed    Emotion = "Stressed"
	Overwhelmed Emotion = "Overwhelmed"
)

// Default is the emotion assigned when text matches nothing, or when
// several emotions tie for the highest keyword count.
const Default = Neutral

// Emotions is the canonical ordering. Every place that iterates over the
// emotion set must walk this slice, never a map, so that dominant-emotion
// selection stays deterministic.
var Emotions = []Emotion{
	Energetic,
	Motivated,
	Neutral,
	Tired,
	Sad,
	Angry,
	Stressed,
	Overwhelmed,
}

var stressScores = map[Emotion]int{
	Energetic:   15,
	Motivated:   20,
	Neutral:     35,
	Tired:       55,
	Sad:         65,
	Angry:       70,
	Stressed:    80,
	Overwhelmed: 95,
}

// Stress returns the fixed severity score (0-100) associated with the
// emotion. Unknown emotions get the default emotion's score.
func (e Emotion) Stress() int {
	if s, ok := stressScores[e]; ok {
		return s
	}
	return stressScores[Default]
}

// Valid reports whether e is part of the fixed enumeration.
func (e Emotion) Valid() bool {
	_, ok := stressScores[e]
	return ok
}

// ParseEmotion resolves a user-supplied label case-insensitively.
func ParseEmotion(value string) (Emotion, error) {
	needle := strings.TrimSpace(strings.ToLower(value))
	for _, e := range Emotions {
		if strings.ToLower(string(e)) == needle {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown emotion %q (expected one of %s)", value, strings.Join(EmotionNames(), ", "))
}

// EmotionNames returns the enumeration as plain strings in canonical order.
func EmotionNames() []string {
	names := make([]string, 0, len(Emotions))
	for _, e := range Emotions {
		names = append(names, string(e))
	}
	return names
}
