package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arjunv/moodlog/internal/classify"
	"github.com/arjunv/moodlog/internal/model"
)

// ErrEmptyText marks a blank analysis request. Callers treat it as a
// user prompt, not a failure; the classifier is never invoked for it.
var ErrEmptyText = errors.New("nothing to analyze: text is empty")

type CreateEntryInput struct {
	Text     string
	Emotion  model.Emotion
	Stress   int
	LoggedAt time.Time
}

type ListEntriesFilter struct {
	Date  string // YYYY-MM-DD; empty means all time
	Limit int    // 0 means no limit
}

func CreateEntry(db *sql.DB, in CreateEntryInput) (int64, error) {
	if !in.Emotion.Valid() {
		return 0, fmt.Errorf("unknown emotion %q", in.Emotion)
	}
	if in.Stress < 0 || in.Stress > 100 {
		return 0, fmt.Errorf("stress must be in [0,100], got %d", in.Stress)
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO entries(text, emotion, stress, logged_at)
VALUES(?, ?, ?, ?)
`, strings.TrimSpace(in.Text), string(in.Emotion), in.Stress, in.LoggedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted entry id: %w", err)
	}
	return id, nil
}

// LogText classifies free text and persists the result. Blank text
// returns ErrEmptyText without touching the store.
func LogText(db *sql.DB, text string, at time.Time) (model.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Entry{}, ErrEmptyText
	}
	emotion, stress := classify.Analyze(text)
	return persist(db, CreateEntryInput{Text: text, Emotion: emotion, Stress: stress, LoggedAt: at})
}

// LogQuick records a one-tap entry. The classifier is bypassed: the
// emotion comes straight from the user action, the stress score from the
// static table, and the stored text carries the quick-tap sentinel.
func LogQuick(db *sql.DB, emotion model.Emotion, at time.Time) (model.Entry, error) {
	if !emotion.Valid() {
		return model.Entry{}, fmt.Errorf("unknown emotion %q", emotion)
	}
	return persist(db, CreateEntryInput{
		Text:     QuickText(emotion),
		Emotion:  emotion,
		Stress:   emotion.Stress(),
		LoggedAt: at,
	})
}

// QuickText is the sentinel stored as entry text for quick-tap entries.
func QuickText(emotion model.Emotion) string {
	return fmt.Sprintf("[Quick: %s]", emotion)
}

// IsQuickText reports whether text is a quick-tap sentinel.
func IsQuickText(text string) bool {
	return strings.HasPrefix(text, "[Quick: ") && strings.HasSuffix(text, "]")
}

func persist(db *sql.DB, in CreateEntryInput) (model.Entry, error) {
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}
	id, err := CreateEntry(db, in)
	if err != nil {
		return model.Entry{}, err
	}
	return model.Entry{
		ID:       id,
		Text:     strings.TrimSpace(in.Text),
		Emotion:  in.Emotion,
		Stress:   in.Stress,
		LoggedAt: in.LoggedAt,
	}, nil
}

// ListEntries returns entries in chronological order, optionally
// restricted to one calendar day.
func ListEntries(db *sql.DB, f ListEntriesFilter) ([]model.Entry, error) {
	query := `
SELECT id, text, emotion, stress, logged_at
FROM entries
WHERE 1=1`
	args := make([]any, 0)

	if strings.TrimSpace(f.Date) != "" {
		start, end, err := dayBounds(f.Date)
		if err != nil {
			return nil, err
		}
		query += ` AND logged_at >= ? AND logged_at < ?`
		args = append(args, start, end)
	}
	query += ` ORDER BY logged_at ASC, id ASC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.Entry, 0)
	for rows.Next() {
		var e model.Entry
		var emotionRaw, loggedAtRaw string
		if err := rows.Scan(&e.ID, &e.Text, &emotionRaw, &e.Stress, &loggedAtRaw); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for entry %d: %w", e.ID, err)
		}
		e.Emotion = model.Emotion(emotionRaw)
		e.LoggedAt = loggedAt
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// ClearAll removes every entry in one statement, so no prior entry is
// visible to any query issued after it returns.
func ClearAll(db *sql.DB) (int64, error) {
	res, err := db.Exec(`DELETE FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected for clear: %w", err)
	}
	return removed, nil
}

func dayBounds(date string) (string, string, error) {
	start, err := parseDateStart(date)
	if err != nil {
		return "", "", err
	}
	t, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return "", "", fmt.Errorf("parse RFC3339 %q: %w", start, err)
	}
	return start, t.Add(24 * time.Hour).Format(time.RFC3339), nil
}

func parseDateStart(value string) (string, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t.Format(time.RFC3339), nil
}
