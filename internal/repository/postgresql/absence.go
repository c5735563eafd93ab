package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/absence"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

// Absence bounds are stored as BIGINT epoch-milliseconds (the legacy wire
// unit). This repository is the single place where they are converted to
// the epoch-seconds contract everything above the data layer uses.
const msPerSecond = 1000

const absenceColumns = `id, employee_id, kind, start_ms, end_ms, created_at`

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var a absence.Absence
	var startMs, endMs int64
	err := row.Scan(&a.ID, &a.EmployeeID, &a.Kind, &startMs, &endMs, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return absence.Absence{}, absence.ErrAbsenceNotFound
	}
	if err != nil {
		return absence.Absence{}, err
	}
	a.Start = startMs / msPerSecond
	a.End = endMs / msPerSecond
	return a, nil
}

func (r *absenceRepositoryImpl) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (id, employee_id, kind, start_ms, end_ms, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING ` + absenceColumns

	return scanAbsence(q.QueryRow(ctx, query,
		a.EmployeeID, a.Kind, a.Start*msPerSecond, a.End*msPerSecond,
	))
}

func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)
	return scanAbsence(q.QueryRow(ctx, `SELECT `+absenceColumns+` FROM absences WHERE id = $1`, id))
}

func (r *absenceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, kind *absence.Kind) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + absenceColumns + ` FROM absences WHERE employee_id = $1`
	args := []interface{}{employeeID}
	if kind != nil {
		query += ` AND kind = $2`
		args = append(args, *kind)
	}
	query += ` ORDER BY start_ms ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAbsences(rows)
}

func (r *absenceRepositoryImpl) ListOverlapping(ctx context.Context, from, to int64) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences
		WHERE start_ms <= $2 AND end_ms >= $1
		ORDER BY start_ms ASC
	`
	rows, err := q.Query(ctx, query, from*msPerSecond, to*msPerSecond)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAbsences(rows)
}

func (r *absenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

func collectAbsences(rows pgx.Rows) ([]absence.Absence, error) {
	var absences []absence.Absence
	for rows.Next() {
		var a absence.Absence
		var startMs, endMs int64
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Kind, &startMs, &endMs, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Start = startMs / msPerSecond
		a.End = endMs / msPerSecond
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return absences, nil
}
