package shiftmodel

import "time"

// ShiftModel is a reusable shift template ("Early 06:00-14:00") used to
// prefill shift forms. Start and End are seconds since local midnight; an
// End at or before Start denotes a shift crossing midnight.
type ShiftModel struct {
	ID        string
	Name      string
	Start     int
	End       int
	CreatedAt time.Time
	UpdatedAt time.Time
}
