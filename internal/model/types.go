package model

import "time"

// Entry is one logged emotional observation. Entries are immutable once
// created: the store exposes insert, read and clear-all only.
type Entry struct {
	ID       int64     `json:"id"`
	Text     string    `json:"text"`
	Emotion  Emotion   `json:"emotion"`
	Stress   int       `json:"stress"`
	LoggedAt time.Time `json:"logged_at"`
}
