package moodlog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/arjunv/moodlog/internal/app"
	"github.com/arjunv/moodlog/internal/db"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// resolveDate normalizes a --date flag value to YYYY-MM-DD, defaulting to
// the current local day when unset.
func resolveDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return t.Format("2006-01-02"), nil
}
