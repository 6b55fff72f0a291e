package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/strrl/learning-journey/pkg/models"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

func sessionOn(id string, date time.Time) models.ScheduledSession {
	return models.ScheduledSession{ID: id, Topic: models.Topic{Title: id}, Date: date, Time: "any"}
}

func TestIsUpcoming(t *testing.T) {
	now := at(2025, 6, 10, 15)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"tomorrow", at(2025, 6, 11, 0), true},
		{"next year", at(2026, 1, 1, 0), true},
		{"today at midnight", at(2025, 6, 10, 0), true},
		{"today later", at(2025, 6, 10, 23), true},
		{"today earlier", at(2025, 6, 10, 1), true},
		{"yesterday", at(2025, 6, 9, 23), false},
		{"last month", at(2025, 5, 10, 12), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUpcoming(sessionOn("s", tt.date), now))
		})
	}
}

func TestTodayWithPastTimeLabelStaysUpcoming(t *testing.T) {
	now := at(2025, 6, 10, 20)
	s := sessionOn("s", at(2025, 6, 10, 0))
	s.Time = "8:00-9:00 AM"
	assert.True(t, IsUpcoming(s, now))
}

func TestPartitionIsDisjointAndComplete(t *testing.T) {
	now := at(2025, 6, 10, 12)
	input := []models.ScheduledSession{
		sessionOn("a", at(2025, 6, 12, 0)),
		sessionOn("b", at(2025, 6, 1, 0)),
		sessionOn("c", at(2025, 6, 10, 0)),
		sessionOn("d", at(2024, 12, 31, 0)),
		sessionOn("e", at(2025, 7, 1, 0)),
	}

	upcoming, past := Partition(input, now)

	ids := func(ss []models.ScheduledSession) []string {
		var out []string
		for _, s := range ss {
			out = append(out, s.ID)
		}
		return out
	}
	assert.Equal(t, []string{"a", "c", "e"}, ids(upcoming))
	assert.Equal(t, []string{"b", "d"}, ids(past))
	assert.Len(t, append(upcoming, past...), len(input))

	seen := map[string]int{}
	for _, s := range append(upcoming, past...) {
		seen[s.ID]++
	}
	for _, s := range input {
		assert.Equal(t, 1, seen[s.ID], "session %s must appear exactly once", s.ID)
	}
}

func TestPartitionEmpty(t *testing.T) {
	upcoming, past := Partition(nil, time.Now())
	assert.Empty(t, upcoming)
	assert.Empty(t, past)
}

func TestSameDayAcrossLocations(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, tokyo)
	// 2025-06-09 23:30 UTC is 2025-06-10 08:30 in Tokyo.
	d := time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC)
	assert.True(t, SameDay(d, now))
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2025, 6, 10, 17, 45, 3, 9, time.Local))
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), got)
}
