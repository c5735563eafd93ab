package note

import "context"

type NoteRepository interface {
	Create(ctx context.Context, n Note) (Note, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Note, error)
	Delete(ctx context.Context, id string) error
}
