package domain

import "time"

// TimeSlot represents a bookable fixed-duration slot. Date may point to the
// next calendar day when the field operates past midnight.
type TimeSlot struct {
	Date      time.Time
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

// PendingSlot represents an interval where field capacity is fully claimed
// but not every claim is approved yet, so the contention is unresolved.
type PendingSlot struct {
	Date      time.Time
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Comment   string
}
