package model_test

import (
	"testing"

	"github.com/arjunv/moodlog/internal/model"
)

func TestEmotionEnumerationFixedOrder(t *testing.T) {
	t.Parallel()

	want := []model.Emotion{
		model.Energetic,
		model.Motivated,
		model.Neutral,
		model.Tired,
		model.Sad,
		model.Angry,
		model.Stressed,
		model.Overwhelmed,
	}
	if len(model.Emotions) != len(want) {
		t.Fatalf("expected %d emotions, got %d", len(want), len(model.Emotions))
	}
	for i, e := range want {
		if model.Emotions[i] != e {
			t.Fatalf("expected emotion %d to be %s, got %s", i, e, model.Emotions[i])
		}
	}
}

func TestStressScoresWithinRange(t *testing.T) {
	t.Parallel()

	for _, e := range model.Emotions {
		s := e.Stress()
		if s < 0 || s > 100 {
			t.Fatalf("stress for %s out of range: %d", e, s)
		}
	}
	if model.Energetic.Stress() != 15 {
		t.Fatalf("expected Energetic stress 15, got %d", model.Energetic.Stress())
	}
	if model.Overwhelmed.Stress() != 95 {
		t.Fatalf("expected Overwhelmed stress 95, got %d", model.Overwhelmed.Stress())
	}
	if model.Emotion("Bogus").Stress() != model.Default.Stress() {
		t.Fatalf("unknown emotion should fall back to default stress")
	}
}

func TestParseEmotionCaseInsensitive(t *testing.T) {
	t.Parallel()

	got, err := model.ParseEmotion("  stressed ")
	if err != nil {
		t.Fatalf("parse stressed: %v", err)
	}
	if got != model.Stressed {
		t.Fatalf("expected Stressed, got %s", got)
	}

	if _, err := model.ParseEmotion("euphoric"); err == nil {
		t.Fatalf("expected error for unknown emotion")
	}
}
