package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, email, phone, address, vacation_days_balance, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Address, &e.VacationDaysBalance, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, email, phone, address, vacation_days_balance, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.Name, emp.Email, emp.Phone, emp.Address, emp.VacationDaysBalance,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, err
	}
	return created, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ``
	args := []interface{}{}
	if filter.Name != nil {
		where = `WHERE name ILIKE $1`
		args = append(args, "%"+*filter.Name+"%")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(
		`SELECT `+employeeColumns+` FROM employees %s ORDER BY name ASC LIMIT %d OFFSET %d`,
		where, limit, offset,
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Address, &e.VacationDaysBalance, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, phone = $3, address = $4, vacation_days_balance = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`
	var updatedID string
	err := q.QueryRow(ctx, query, emp.Name, emp.Email, emp.Phone, emp.Address, emp.VacationDaysBalance, emp.ID).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
	}
	return err
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) AdjustVacationBalance(ctx context.Context, id string, delta int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET vacation_days_balance = vacation_days_balance + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING vacation_days_balance
	`
	var balance int
	err := q.QueryRow(ctx, query, delta, id).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust vacation balance for employee %s: %w", id, err)
	}
	return balance, nil
}
