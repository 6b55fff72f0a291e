package models

import "time"

// Topic is a single generated learning topic
type Topic struct {
	Title       string
	Description string
}

// ScheduledSession is a topic the user has booked for a calendar day
type ScheduledSession struct {
	ID          string
	Topic       Topic
	Date        time.Time // Calendar day, local midnight when picked in the dialog
	Time        string    // Free-form slot label, e.g. "10:00-11:00 AM"
	ScheduledAt time.Time // When the session was confirmed
}
