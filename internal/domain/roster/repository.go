package roster

import "context"

type CalendarDayRepository interface {
	// SeedDays inserts the given day midnights, skipping dates that
	// already exist, and returns how many rows were actually inserted.
	SeedDays(ctx context.Context, dates []int64) (int, error)
	// ListBetween returns the seeded days in [from, to], ascending.
	ListBetween(ctx context.Context, from, to int64) ([]CalendarDay, error)
}
