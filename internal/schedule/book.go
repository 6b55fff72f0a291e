// Package schedule owns the list of scheduled learning sessions and its
// persisted form.
package schedule

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/strrl/learning-journey/internal/logger"
	"github.com/strrl/learning-journey/internal/storage"
	"github.com/strrl/learning-journey/pkg/models"
)

// ErrDuplicateID is returned by Add when the id is already in the list
var ErrDuplicateID = errors.New("session id already scheduled")

// Book is the single owner of the session list. The list only changes through
// Add, and every change is written back to the store in full.
type Book struct {
	store    storage.Store
	key      string
	sessions []models.ScheduledSession
	log      *slog.Logger
}

// Restore loads the list stored under key. A missing key gives an empty list.
// Unreadable content is logged and discarded; it never fails the caller.
func Restore(store storage.Store, key string) *Book {
	b := &Book{
		store: store,
		key:   key,
		log:   logger.ComponentLogger("schedule"),
	}

	raw, ok, err := store.Get(key)
	if err != nil {
		b.log.Warn("failed to read stored sessions, starting empty", "key", key, "error", err)
		return b
	}
	if !ok {
		b.log.Debug("no stored sessions", "key", key)
		return b
	}

	sessions, err := Decode(raw)
	if err != nil {
		b.log.Warn("discarding stored sessions", "key", key, "error", err)
		return b
	}
	b.sessions = sessions
	b.log.Info("restored sessions", "key", key, "count", len(sessions))
	return b
}

// Sessions returns a copy of the list, newest first.
func (b *Book) Sessions() []models.ScheduledSession {
	out := make([]models.ScheduledSession, len(b.sessions))
	copy(out, b.sessions)
	return out
}

// Len returns the number of sessions
func (b *Book) Len() int {
	return len(b.sessions)
}

// Add prepends s and persists the whole list. If the write fails the list
// is left as it was.
func (b *Book) Add(s models.ScheduledSession) error {
	if s.ID == "" {
		return fmt.Errorf("session has no id")
	}
	for _, existing := range b.sessions {
		if existing.ID == s.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
	}

	next := make([]models.ScheduledSession, 0, len(b.sessions)+1)
	next = append(next, s)
	next = append(next, b.sessions...)

	if err := b.write(next); err != nil {
		return err
	}
	b.sessions = next
	b.log.Info("session scheduled", "id", s.ID, "title", s.Topic.Title, "date", FormatTime(s.Date), "time", s.Time)
	return nil
}

func (b *Book) write(sessions []models.ScheduledSession) error {
	raw, err := Encode(sessions)
	if err != nil {
		return err
	}
	if err := b.store.Set(b.key, raw); err != nil {
		return fmt.Errorf("failed to persist sessions: %w", err)
	}
	return nil
}
