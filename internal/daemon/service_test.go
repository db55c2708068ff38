package daemon

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/memento/internal/config"
	"github.com/theirongolddev/memento/internal/store"
)

var errTest = errors.New("dispatch failed")

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(`{"birthdate": "1990-01-01"}`),
		time.Date(2024, 8, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestTriggerOn(t *testing.T) {
	now := time.Date(2024, 8, 21, 14, 30, 0, 0, time.UTC)

	at, err := triggerOn(now, "08:00")
	if err != nil {
		t.Fatalf("triggerOn: %v", err)
	}
	want := time.Date(2024, 8, 21, 8, 0, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("triggerOn = %v, want %v", at, want)
	}

	if _, err := triggerOn(now, "8am"); err == nil {
		t.Error("expected error for unparseable time")
	}
}

func TestNextTrigger(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		hhmm string
		want time.Time
	}{
		{
			"before today's trigger",
			time.Date(2024, 8, 21, 6, 0, 0, 0, time.UTC), "08:00",
			time.Date(2024, 8, 21, 8, 0, 0, 0, time.UTC),
		},
		{
			"after today's trigger",
			time.Date(2024, 8, 21, 9, 15, 0, 0, time.UTC), "08:00",
			time.Date(2024, 8, 22, 8, 0, 0, 0, time.UTC),
		},
		{
			"exactly at the trigger",
			time.Date(2024, 8, 21, 8, 0, 0, 0, time.UTC), "08:00",
			time.Date(2024, 8, 22, 8, 0, 0, 0, time.UTC),
		},
		{
			"unparseable falls back a day",
			time.Date(2024, 8, 21, 9, 0, 0, 0, time.UTC), "bogus",
			time.Date(2024, 8, 22, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nextTrigger(tc.now, tc.hhmm)
			if !got.Equal(tc.want) {
				t.Errorf("nextTrigger(%v, %q) = %v, want %v", tc.now, tc.hhmm, got, tc.want)
			}
		})
	}
}

func TestNotifyOnceDedupesSameDay(t *testing.T) {
	var sent []string
	svc := New(Config{
		JournalPath: filepath.Join(t.TempDir(), "journal.db"),
		Dispatch: func(body string) error {
			sent = append(sent, body)
			return nil
		},
	}, nil)

	now := time.Date(2024, 8, 21, 8, 0, 1, 0, time.UTC)
	cfg := testConfig(t)

	svc.notifyOnce(now, cfg)
	svc.notifyOnce(now.Add(time.Minute), cfg)

	if len(sent) != 1 {
		t.Fatalf("dispatched %d times, want 1", len(sent))
	}
	if !strings.Contains(sent[0], "weeks still ahead") {
		t.Errorf("unexpected motivational body: %q", sent[0])
	}

	st := svc.status()
	if st.SendCount != 1 {
		t.Errorf("SendCount = %d, want 1", st.SendCount)
	}
	if !st.LastSentAt.Equal(now) {
		t.Errorf("LastSentAt = %v, want %v", st.LastSentAt, now)
	}

	// The next day fires again.
	svc.notifyOnce(now.AddDate(0, 0, 1), cfg)
	if len(sent) != 2 {
		t.Errorf("dispatched %d times after day rollover, want 2", len(sent))
	}
}

func TestNotifyOnceDispatchFailureLeavesDayUnsent(t *testing.T) {
	journalPath := filepath.Join(t.TempDir(), "journal.db")
	calls := 0
	svc := New(Config{
		JournalPath: journalPath,
		Dispatch: func(string) error {
			calls++
			if calls == 1 {
				return errTest
			}
			return nil
		},
	}, nil)

	now := time.Date(2024, 8, 21, 8, 0, 0, 0, time.UTC)
	cfg := testConfig(t)

	svc.notifyOnce(now, cfg)
	if st := svc.status(); st.SendCount != 0 || st.LastError == "" {
		t.Errorf("after failed dispatch: SendCount=%d LastError=%q", st.SendCount, st.LastError)
	}

	journal, err := store.Open(journalPath)
	if err != nil {
		t.Fatal(err)
	}
	sent, err := journal.SentOn(now)
	_ = journal.Close()
	if err != nil {
		t.Fatal(err)
	}
	if sent {
		t.Error("failed dispatch must not be journaled")
	}

	// Retry succeeds and clears the error.
	svc.notifyOnce(now.Add(time.Minute), cfg)
	if st := svc.status(); st.SendCount != 1 || st.LastError != "" {
		t.Errorf("after retry: SendCount=%d LastError=%q", st.SendCount, st.LastError)
	}
}

func TestDueToday(t *testing.T) {
	svc := New(Config{
		JournalPath: filepath.Join(t.TempDir(), "journal.db"),
		Dispatch:    func(string) error { return nil },
	}, nil)

	morning := time.Date(2024, 8, 21, 6, 0, 0, 0, time.UTC)
	afternoon := time.Date(2024, 8, 21, 14, 0, 0, 0, time.UTC)

	due, err := svc.dueToday(morning, "08:00")
	if err != nil {
		t.Fatalf("dueToday: %v", err)
	}
	if due {
		t.Error("not due before the trigger time")
	}

	due, err = svc.dueToday(afternoon, "08:00")
	if err != nil {
		t.Fatalf("dueToday: %v", err)
	}
	if !due {
		t.Error("due after the trigger when nothing was sent")
	}

	svc.notifyOnce(afternoon, testConfig(t))

	due, err = svc.dueToday(afternoon, "08:00")
	if err != nil {
		t.Fatalf("dueToday: %v", err)
	}
	if due {
		t.Error("not due once today's send is journaled")
	}
}

func TestStatusEndpoint(t *testing.T) {
	svc := New(Config{
		JournalPath: filepath.Join(t.TempDir(), "journal.db"),
		Dispatch:    func(string) error { return nil },
	}, nil)
	svc.notifyOnce(time.Date(2024, 8, 21, 8, 0, 0, 0, time.UTC), testConfig(t))

	rec := httptest.NewRecorder()
	svc.handleStatus(rec, httptest.NewRequest("GET", "/v1/status", nil))

	if rec.Code != 200 {
		t.Fatalf("status code = %d", rec.Code)
	}
	var st Status
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if st.SendCount != 1 {
		t.Errorf("SendCount = %d, want 1", st.SendCount)
	}

	rec = httptest.NewRecorder()
	svc.handleHealth(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Body.String() != "ok\n" {
		t.Errorf("healthz body = %q", rec.Body.String())
	}
}
