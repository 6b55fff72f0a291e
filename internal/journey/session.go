package journey

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/strrl/learning-journey/internal/schedule"
	"github.com/strrl/learning-journey/pkg/models"
)

// NewSession builds a session record with a fresh id. date is truncated to
// its calendar day and slot is trimmed.
func NewSession(topic models.Topic, date time.Time, slot string, now time.Time) models.ScheduledSession {
	return models.ScheduledSession{
		ID:          uuid.NewString(),
		Topic:       topic,
		Date:        schedule.StartOfDay(date),
		Time:        strings.TrimSpace(slot),
		ScheduledAt: now,
	}
}
