package schedule

import (
	"time"

	"github.com/strrl/learning-journey/pkg/models"
)

// IsUpcoming reports whether s is still ahead of now: its date is after now,
// or it falls on the same calendar day. The free-form time label is not
// consulted, so a session dated today stays upcoming all day.
func IsUpcoming(s models.ScheduledSession, now time.Time) bool {
	return s.Date.After(now) || SameDay(s.Date, now)
}

// SameDay reports whether a and b fall on the same calendar day in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Partition splits sessions into upcoming and past, keeping the input order
// inside each group.
func Partition(sessions []models.ScheduledSession, now time.Time) (upcoming, past []models.ScheduledSession) {
	for _, s := range sessions {
		if IsUpcoming(s, now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return upcoming, past
}

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
