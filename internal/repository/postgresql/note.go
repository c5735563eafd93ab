package postgresql

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/note"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type noteRepositoryImpl struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) note.NoteRepository {
	return &noteRepositoryImpl{db: db}
}

func (r *noteRepositoryImpl) Create(ctx context.Context, n note.Note) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notes (id, employee_id, content, created_at)
		VALUES (uuidv7(), $1, $2, NOW())
		RETURNING id, employee_id, content, created_at
	`
	err := q.QueryRow(ctx, query, n.EmployeeID, n.Content).
		Scan(&n.ID, &n.EmployeeID, &n.Content, &n.CreatedAt)
	if err != nil {
		return note.Note{}, err
	}
	return n, nil
}

func (r *noteRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]note.Note, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, employee_id, content, created_at FROM notes WHERE employee_id = $1 ORDER BY created_at DESC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNoteNotFound
	}
	return nil
}
