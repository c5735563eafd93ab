package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shiftmodel"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type shiftModelRepositoryImpl struct {
	db *database.DB
}

func NewShiftModelRepository(db *database.DB) shiftmodel.ShiftModelRepository {
	return &shiftModelRepositoryImpl{db: db}
}

const shiftModelColumns = `id, name, start_seconds, end_seconds, created_at, updated_at`

func scanShiftModel(row pgx.Row) (shiftmodel.ShiftModel, error) {
	var m shiftmodel.ShiftModel
	err := row.Scan(&m.ID, &m.Name, &m.Start, &m.End, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return shiftmodel.ShiftModel{}, shiftmodel.ErrShiftModelNotFound
	}
	return m, err
}

func (r *shiftModelRepositoryImpl) Create(ctx context.Context, model shiftmodel.ShiftModel) (shiftmodel.ShiftModel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_models (id, name, start_seconds, end_seconds, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING ` + shiftModelColumns

	return scanShiftModel(q.QueryRow(ctx, query, model.Name, model.Start, model.End))
}

func (r *shiftModelRepositoryImpl) GetByID(ctx context.Context, id string) (shiftmodel.ShiftModel, error) {
	q := GetQuerier(ctx, r.db)
	return scanShiftModel(q.QueryRow(ctx, `SELECT `+shiftModelColumns+` FROM shift_models WHERE id = $1`, id))
}

func (r *shiftModelRepositoryImpl) List(ctx context.Context) ([]shiftmodel.ShiftModel, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+shiftModelColumns+` FROM shift_models ORDER BY start_seconds ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []shiftmodel.ShiftModel
	for rows.Next() {
		var m shiftmodel.ShiftModel
		if err := rows.Scan(&m.ID, &m.Name, &m.Start, &m.End, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return models, nil
}

func (r *shiftModelRepositoryImpl) Update(ctx context.Context, model shiftmodel.ShiftModel) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_models
		SET name = $1, start_seconds = $2, end_seconds = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`
	var updatedID string
	err := q.QueryRow(ctx, query, model.Name, model.Start, model.End, model.ID).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return shiftmodel.ErrShiftModelNotFound
	}
	return err
}

func (r *shiftModelRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_models WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shiftmodel.ErrShiftModelNotFound
	}
	return nil
}
