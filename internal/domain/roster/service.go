package roster

import (
	"context"
	"time"
)

type RosterService interface {
	// SeedYear bulk-inserts the year's calendar days (idempotent).
	SeedYear(ctx context.Context, year int) (SeedYearResponse, error)
	// MonthView assembles the schedule table for month, optionally
	// filtered to one employee.
	MonthView(ctx context.Context, month time.Time, employeeID *string) (MonthViewResponse, error)
}
