// Package daemon provides the long-running background service that fires
// one desktop notification per day at the configured time.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/theirongolddev/memento/internal/config"
	"github.com/theirongolddev/memento/internal/engine"
	"github.com/theirongolddev/memento/internal/notify"
	"github.com/theirongolddev/memento/internal/store"
)

// Config controls the daemon runtime behavior.
type Config struct {
	ConfigPath  string
	JournalPath string
	Addr        string

	// Dispatch delivers a notification body. Defaults to notify.Send;
	// injectable for tests.
	Dispatch func(body string) error

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Status is served at /v1/status.
type Status struct {
	StartedAt   time.Time `json:"started_at"`
	NextTrigger time.Time `json:"next_trigger"`
	LastSentAt  time.Time `json:"last_sent_at,omitempty"`
	SendCount   int64     `json:"send_count"`
	LastError   string    `json:"last_error,omitempty"`
}

// Service runs the notification schedule and a small HTTP status API.
type Service struct {
	cfg Config
	log *zap.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	nextTrigger time.Time
	lastSentAt  time.Time
	sendCount   int64
	lastError   string
}

// New returns a new daemon service with the provided config.
func New(cfg Config, log *zap.Logger) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8878"
	}
	if cfg.Dispatch == nil {
		cfg.Dispatch = notify.Send
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		cfg:       cfg,
		log:       log,
		startedAt: cfg.Now(),
	}
}

// Run serves the status API and fires notifications until ctx is canceled.
// If today's trigger already passed and nothing was sent yet (e.g. the
// machine was asleep), it catches up immediately.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	for {
		now := s.cfg.Now()
		cfg, err := config.Load(s.cfg.ConfigPath, now)
		if err != nil {
			s.setError(err)
			s.log.Error("config load failed", zap.Error(err))
			return shutdown(server, err)
		}

		next := nextTrigger(now, cfg.NotificationTime)
		if due, err := s.dueToday(now, cfg.NotificationTime); err != nil {
			s.setError(err)
			s.log.Warn("journal check failed", zap.Error(err))
		} else if due {
			s.notifyOnce(now, cfg)
		}

		s.mu.Lock()
		s.nextTrigger = next
		s.mu.Unlock()
		s.log.Info("scheduled next notification", zap.Time("at", next))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return shutdown(server, nil)
		case err := <-errCh:
			timer.Stop()
			return fmt.Errorf("daemon http server: %w", err)
		case <-timer.C:
			fireAt := s.cfg.Now()
			// Re-read config so edits apply without a restart.
			cfg, err := config.Load(s.cfg.ConfigPath, fireAt)
			if err != nil {
				s.setError(err)
				s.log.Error("config reload failed", zap.Error(err))
				continue
			}
			s.notifyOnce(fireAt, cfg)
		}
	}
}

func shutdown(server *http.Server, cause error) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && cause == nil {
		return err
	}
	return cause
}

// dueToday reports whether today's trigger has already passed without a
// journaled send.
func (s *Service) dueToday(now time.Time, hhmm string) (bool, error) {
	today, err := triggerOn(now, hhmm)
	if err != nil || now.Before(today) {
		return false, err
	}

	journal, err := store.Open(s.cfg.JournalPath)
	if err != nil {
		return false, err
	}
	defer func() { _ = journal.Close() }()

	sent, err := journal.SentOn(now)
	if err != nil {
		return false, err
	}
	return !sent, nil
}

// notifyOnce assembles a fresh report, dispatches the styled text, and
// journals the send. A journaled send for the same day short-circuits.
func (s *Service) notifyOnce(now time.Time, cfg config.Config) {
	journal, err := store.Open(s.cfg.JournalPath)
	if err != nil {
		s.setError(err)
		s.log.Error("journal open failed", zap.Error(err))
		return
	}
	defer func() { _ = journal.Close() }()

	sent, err := journal.SentOn(now)
	if err != nil {
		s.setError(err)
		s.log.Error("journal query failed", zap.Error(err))
		return
	}
	if sent {
		s.log.Debug("already notified today", zap.String("day", now.Format("2006-01-02")))
		return
	}

	report := engine.Assemble(now, cfg)
	body := notify.Build(report, cfg.NotificationStyle)

	if err := s.cfg.Dispatch(body); err != nil {
		s.setError(err)
		s.log.Error("notification dispatch failed", zap.Error(err))
		return
	}

	if err := journal.RecordSent(now, now, cfg.NotificationStyle, body); err != nil {
		s.setError(err)
		s.log.Warn("journal write failed", zap.Error(err))
	}

	s.mu.Lock()
	s.lastSentAt = now
	s.sendCount++
	s.lastError = ""
	s.mu.Unlock()

	s.log.Info("notification sent",
		zap.String("style", cfg.NotificationStyle),
		zap.Int("bytes", len(body)),
	)
}

func (s *Service) setError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
}

// triggerOn returns the HH:MM trigger on now's calendar day, in now's
// location.
func triggerOn(now time.Time, hhmm string) (time.Time, error) {
	at, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid notification_time %q: %w", hhmm, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		at.Hour(), at.Minute(), 0, 0, now.Location()), nil
}

// nextTrigger returns the next HH:MM occurrence strictly after now. An
// unparseable time falls back to one day out so the loop keeps running.
func nextTrigger(now time.Time, hhmm string) time.Time {
	today, err := triggerOn(now, hhmm)
	if err != nil {
		return now.AddDate(0, 0, 1)
	}
	if today.After(now) {
		return today
	}
	return today.AddDate(0, 0, 1)
}

func (s *Service) status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:   s.startedAt,
		NextTrigger: s.nextTrigger,
		LastSentAt:  s.lastSentAt,
		SendCount:   s.sendCount,
		LastError:   s.lastError,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.status())
}
