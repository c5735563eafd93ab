package postgresql

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) AbsencesOverlapping(ctx context.Context, from, to int64) ([]dashboard.AbsenceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, e.name, a.kind, a.start_ms, a.end_ms
		FROM absences a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.start_ms <= $2 AND a.end_ms >= $1
		ORDER BY a.start_ms ASC
	`
	rows, err := q.Query(ctx, query, from*msPerSecond, to*msPerSecond)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dashboard.AbsenceRow
	for rows.Next() {
		var row dashboard.AbsenceRow
		var startMs, endMs int64
		if err := rows.Scan(&row.AbsenceID, &row.EmployeeID, &row.EmployeeName, &row.Kind, &startMs, &endMs); err != nil {
			return nil, err
		}
		row.Start = startMs / msPerSecond
		row.End = endMs / msPerSecond
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *dashboardRepositoryImpl) ShiftsBetween(ctx context.Context, from, to int64) ([]dashboard.ShiftRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, e.name, sr.name, s.date, s.start_at, s.end_at
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		LEFT JOIN staff_roles sr ON sr.id = s.role_id
		WHERE s.date BETWEEN $1 AND $2
		ORDER BY s.date ASC, s.start_at ASC
	`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dashboard.ShiftRow
	for rows.Next() {
		var row dashboard.ShiftRow
		if err := rows.Scan(&row.ShiftID, &row.EmployeeID, &row.EmployeeName, &row.RoleName, &row.Date, &row.Start, &row.End); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
