package postgresql

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/roster"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type calendarDayRepositoryImpl struct {
	db *database.DB
}

func NewCalendarDayRepository(db *database.DB) roster.CalendarDayRepository {
	return &calendarDayRepositoryImpl{db: db}
}

func (r *calendarDayRepositoryImpl) SeedDays(ctx context.Context, dates []int64) (int, error) {
	q := GetQuerier(ctx, r.db)

	// One row per distinct calendar date system-wide; re-seeding a year
	// someone else already created is a no-op.
	query := `
		INSERT INTO calendar_days (date)
		SELECT unnest($1::bigint[])
		ON CONFLICT (date) DO NOTHING
	`
	tag, err := q.Exec(ctx, query, dates)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *calendarDayRepositoryImpl) ListBetween(ctx context.Context, from, to int64) ([]roster.CalendarDay, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT date FROM calendar_days WHERE date BETWEEN $1 AND $2 ORDER BY date ASC`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []roster.CalendarDay
	for rows.Next() {
		var d roster.CalendarDay
		if err := rows.Scan(&d.Date); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}
