package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffhub/staffhub-backend-go/internal/domain/staffrole"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) staffrole.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

const roleColumns = `id, name, color, created_at, updated_at`

func scanRole(row pgx.Row) (staffrole.Role, error) {
	var role staffrole.Role
	err := row.Scan(&role.ID, &role.Name, &role.Color, &role.CreatedAt, &role.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return staffrole.Role{}, staffrole.ErrRoleNotFound
	}
	return role, err
}

func (r *roleRepositoryImpl) Create(ctx context.Context, role staffrole.Role) (staffrole.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_roles (id, name, color, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING ` + roleColumns

	created, err := scanRole(q.QueryRow(ctx, query, role.Name, role.Color))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return staffrole.Role{}, staffrole.ErrRoleNameExists
		}
		return staffrole.Role{}, err
	}
	return created, nil
}

func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (staffrole.Role, error) {
	q := GetQuerier(ctx, r.db)
	return scanRole(q.QueryRow(ctx, `SELECT `+roleColumns+` FROM staff_roles WHERE id = $1`, id))
}

func (r *roleRepositoryImpl) List(ctx context.Context) ([]staffrole.Role, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+roleColumns+` FROM staff_roles ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRoles(rows)
}

func (r *roleRepositoryImpl) Update(ctx context.Context, role staffrole.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff_roles
		SET name = $1, color = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`
	var updatedID string
	err := q.QueryRow(ctx, query, role.Name, role.Color, role.ID).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return staffrole.ErrRoleNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return staffrole.ErrRoleNameExists
		}
	}
	return err
}

func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff_roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return staffrole.ErrRoleNotFound
	}
	return nil
}

func (r *roleRepositoryImpl) AssignToEmployee(ctx context.Context, roleID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_roles (employee_id, staff_role_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := q.Exec(ctx, query, employeeID, roleID)
	return err
}

func (r *roleRepositoryImpl) RemoveFromEmployee(ctx context.Context, roleID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM employee_roles WHERE employee_id = $1 AND staff_role_id = $2`,
		employeeID, roleID,
	)
	return err
}

func (r *roleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]staffrole.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sr.id, sr.name, sr.color, sr.created_at, sr.updated_at
		FROM staff_roles sr
		JOIN employee_roles er ON er.staff_role_id = sr.id
		WHERE er.employee_id = $1
		ORDER BY sr.name ASC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRoles(rows)
}

func collectRoles(rows pgx.Rows) ([]staffrole.Role, error) {
	var roles []staffrole.Role
	for rows.Next() {
		var role staffrole.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Color, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}
