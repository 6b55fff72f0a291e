package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/strrl/learning-journey/pkg/models"
)

// ErrUnreadable means the persisted session list could not be used.
// Callers recover by starting from an empty list.
var ErrUnreadable = errors.New("persisted sessions unreadable")

// isoLayout matches JavaScript's Date.prototype.toISOString output
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

type topicRecord struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type sessionRecord struct {
	ID          *string      `json:"id"`
	Topic       *topicRecord `json:"topic"`
	Date        *string      `json:"date"`
	Time        *string      `json:"time"`
	ScheduledAt *string      `json:"scheduledAt"`
}

type topicWire struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type sessionWire struct {
	ID          string    `json:"id"`
	Topic       topicWire `json:"topic"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ScheduledAt string    `json:"scheduledAt"`
}

// FormatTime renders t the way the session list stores it: UTC, millisecond precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// Encode serializes sessions as a JSON array, preserving order.
func Encode(sessions []models.ScheduledSession) (string, error) {
	out := make([]sessionWire, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, sessionWire{
			ID:          s.ID,
			Topic:       topicWire{Title: s.Topic.Title, Description: s.Topic.Description},
			Date:        FormatTime(s.Date),
			Time:        s.Time,
			ScheduledAt: FormatTime(s.ScheduledAt),
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to encode sessions: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored session list. Every record must carry an id, a topic
// with a title, a time label and two ISO-8601 timestamps; ids must be unique.
// Anything else fails with ErrUnreadable. Date fields come back in local time.
func Decode(raw string) ([]models.ScheduledSession, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: not a JSON array", ErrUnreadable)
	}

	var records []sessionRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	sessions := make([]models.ScheduledSession, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		s, err := r.toSession()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrUnreadable, i, err)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("%w: record %d: duplicate id %q", ErrUnreadable, i, s.ID)
		}
		seen[s.ID] = struct{}{}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (r sessionRecord) toSession() (models.ScheduledSession, error) {
	switch {
	case r.ID == nil || *r.ID == "":
		return models.ScheduledSession{}, errors.New("missing id")
	case r.Topic == nil || r.Topic.Title == nil:
		return models.ScheduledSession{}, errors.New("missing topic title")
	case r.Time == nil:
		return models.ScheduledSession{}, errors.New("missing time")
	case r.Date == nil:
		return models.ScheduledSession{}, errors.New("missing date")
	case r.ScheduledAt == nil:
		return models.ScheduledSession{}, errors.New("missing scheduledAt")
	}

	date, err := time.Parse(time.RFC3339Nano, *r.Date)
	if err != nil {
		return models.ScheduledSession{}, fmt.Errorf("bad date: %w", err)
	}
	scheduledAt, err := time.Parse(time.RFC3339Nano, *r.ScheduledAt)
	if err != nil {
		return models.ScheduledSession{}, fmt.Errorf("bad scheduledAt: %w", err)
	}

	topic := models.Topic{Title: *r.Topic.Title}
	if r.Topic.Description != nil {
		topic.Description = *r.Topic.Description
	}

	return models.ScheduledSession{
		ID:          *r.ID,
		Topic:       topic,
		Date:        date.Local(),
		Time:        *r.Time,
		ScheduledAt: scheduledAt.Local(),
	}, nil
}
