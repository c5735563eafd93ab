package employee

import "time"

// Employee is the aggregate root of a roster member: personal fields, the
// remaining vacation-day balance, and (via their own repositories) shifts,
// absences, notes and roles.
type Employee struct {
	ID      string
	Name    string
	Email   *string
	Phone   *string
	Address *string

	// VacationDaysBalance is decremented when a vacation window is
	// created and restored when it is deleted, always in the same
	// transaction as the window write.
	VacationDaysBalance int

	CreatedAt time.Time
	UpdatedAt time.Time
}
