// Package store provides a SQLite-backed journal of sent notifications so
// the daemon never notifies twice on the same day, even across restarts.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS notifications (
	day     TEXT PRIMARY KEY,
	sent_at TEXT NOT NULL,
	style   TEXT NOT NULL,
	body    TEXT NOT NULL
);
`

// dayLayout keys journal rows by local calendar date.
const dayLayout = "2006-01-02"

// Journal records which days a notification has been delivered for.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// SentOn reports whether a notification was already delivered on day.
func (j *Journal) SentOn(day time.Time) (bool, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM notifications WHERE day = ?",
		day.Format(dayLayout)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RecordSent journals a delivered notification for day.
func (j *Journal) RecordSent(day, sentAt time.Time, style, body string) error {
	_, err := j.db.Exec(`INSERT OR REPLACE INTO notifications (day, sent_at, style, body)
		VALUES (?, ?, ?, ?)`,
		day.Format(dayLayout), sentAt.UTC().Format(time.RFC3339), style, body)
	return err
}

// Entry is one journaled notification.
type Entry struct {
	Day    time.Time
	SentAt time.Time
	Style  string
	Body   string
}

// Recent returns the most recent n journal entries, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		"SELECT day, sent_at, style, body FROM notifications ORDER BY day DESC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var dayStr, sentStr string
		var e Entry
		if err := rows.Scan(&dayStr, &sentStr, &e.Style, &e.Body); err != nil {
			return nil, err
		}
		e.Day, _ = time.Parse(dayLayout, dayStr)
		e.SentAt, _ = time.Parse(time.RFC3339, sentStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of journaled notifications.
func (j *Journal) Count() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM notifications").Scan(&count)
	return count, err
}
