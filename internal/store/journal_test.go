package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "state", "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournalRoundTrip(t *testing.T) {
	j := openTestJournal(t)

	day := time.Date(2024, 8, 21, 0, 0, 0, 0, time.Local)
	sentAt := time.Date(2024, 8, 21, 8, 0, 3, 0, time.Local)

	sent, err := j.SentOn(day)
	if err != nil {
		t.Fatalf("SentOn: %v", err)
	}
	if sent {
		t.Error("fresh journal should have no entry")
	}

	if err := j.RecordSent(day, sentAt, "motivational", "Make today count."); err != nil {
		t.Fatalf("RecordSent: %v", err)
	}

	sent, err = j.SentOn(day)
	if err != nil {
		t.Fatalf("SentOn: %v", err)
	}
	if !sent {
		t.Error("expected entry after RecordSent")
	}

	// A different day is still unsent.
	sent, err = j.SentOn(day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("SentOn: %v", err)
	}
	if sent {
		t.Error("next day should be unsent")
	}
}

func TestJournalRecordSentIsIdempotent(t *testing.T) {
	j := openTestJournal(t)
	day := time.Date(2024, 8, 21, 0, 0, 0, 0, time.Local)

	for i := 0; i < 3; i++ {
		if err := j.RecordSent(day, day.Add(8*time.Hour), "sobering", "body"); err != nil {
			t.Fatalf("RecordSent: %v", err)
		}
	}

	count, err := j.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}

func TestJournalRecent(t *testing.T) {
	j := openTestJournal(t)

	base := time.Date(2024, 8, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		day := base.AddDate(0, 0, i)
		if err := j.RecordSent(day, day, "motivational", "body"); err != nil {
			t.Fatalf("RecordSent: %v", err)
		}
	}

	entries, err := j.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Recent(3) returned %d entries", len(entries))
	}
	if got := entries[0].Day.Format("2006-01-02"); got != "2024-08-05" {
		t.Errorf("newest entry day = %s, want 2024-08-05", got)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Day.After(entries[i-1].Day) {
			t.Error("entries not ordered newest first")
		}
	}
	if entries[0].Style != "motivational" || entries[0].Body != "body" {
		t.Errorf("unexpected entry payload: %+v", entries[0])
	}
}

func TestJournalPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	day := time.Date(2024, 8, 21, 0, 0, 0, 0, time.UTC)

	j, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := j.RecordSent(day, day, "motivational", "body"); err != nil {
		t.Fatalf("RecordSent: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	j, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = j.Close() }()

	sent, err := j.SentOn(day)
	if err != nil {
		t.Fatalf("SentOn: %v", err)
	}
	if !sent {
		t.Error("journal entry lost across reopen")
	}
}
