package dashboard

import "context"

type DashboardRepository interface {
	// AbsencesOverlapping returns all windows intersecting [from, to],
	// joined with employee names.
	AbsencesOverlapping(ctx context.Context, from, to int64) ([]AbsenceRow, error)
	// ShiftsBetween returns all shifts whose day falls in [from, to],
	// joined with employee and role names, ascending by date.
	ShiftsBetween(ctx context.Context, from, to int64) ([]ShiftRow, error)
}
