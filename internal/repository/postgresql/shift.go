package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shift"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Shift timestamps are stored as BIGINT epoch-seconds; a zero start/end
// means the time was never set (matching the timekit sentinel).
const shiftColumns = `s.id, s.employee_id, s.role_id, s.date, s.start_at, s.end_at, s.created_at, s.updated_at, sr.name`

const shiftJoin = `
		FROM shifts s
		LEFT JOIN staff_roles sr ON sr.id = s.role_id
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(&s.ID, &s.EmployeeID, &s.RoleID, &s.Date, &s.Start, &s.End, &s.CreatedAt, &s.UpdatedAt, &s.RoleName)
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, err
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, employee_id, role_id, date, start_at, end_at, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, s.EmployeeID, s.RoleID, s.Date, s.Start, s.End).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Shift{}, shift.ErrShiftExists
		}
		return shift.Shift{}, err
	}
	return s, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + shiftColumns + shiftJoin + `WHERE s.id = $1`
	return scanShift(q.QueryRow(ctx, query, id))
}

func (r *shiftRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to int64) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftJoin + `
		WHERE s.employee_id = $1 AND s.date BETWEEN $2 AND $3
		ORDER BY s.date ASC`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShifts(rows)
}

func (r *shiftRepositoryImpl) ListBetween(ctx context.Context, from, to int64) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftJoin + `
		WHERE s.date BETWEEN $1 AND $2
		ORDER BY s.date ASC, s.start_at ASC`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShifts(rows)
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET role_id = $1, start_at = $2, end_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`
	var updatedID string
	err := q.QueryRow(ctx, query, s.RoleID, s.Start, s.End, s.ID).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.ErrShiftNotFound
	}
	return err
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.RoleID, &s.Date, &s.Start, &s.End, &s.CreatedAt, &s.UpdatedAt, &s.RoleName); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shifts, nil
}
