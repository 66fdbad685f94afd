package classify

import "github.com/arjunv/moodlog/internal/model"

// lexicon maps each emotion to its lowercase trigger keywords. The table is
// read-only after init; matching is substring containment over the
// lowercased input, so "sleepy" also fires on "sleepyhead".
var lexicon = map[model.Emotion][]string{
	model.Energetic:   {"energetic", "excited", "pumped", "awesome", "amazing"},
	model.Motivated:   {"motivated", "focused", "goal", "succeed", "study"},
	model.Neutral:     {"okay", "fine", "normal", "alright", "meh"},
	model.Tired:       {"tired", "exhausted", "sleepy", "sleep", "fatigue"},
	model.Sad:         {"sad", "unhappy", "crying", "lonely", "miss"},
	model.Angry:       {"angry", "mad", "furious", "hate", "annoyed"},
	model.Stressed:    {"stressed", "exam", "deadline", "pressure", "worried"},
	model.Overwhelmed: {"overwhelmed", "cant", "panic", "help", "breaking"},
}

// Keywords returns the trigger words for an emotion in table order. The
// returned slice must not be mutated.
func Keywords(e model.Emotion) []string {
	return lexicon[e]
}
