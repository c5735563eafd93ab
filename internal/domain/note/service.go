package note

import "context"

type NoteService interface {
	Create(ctx context.Context, employeeID string, req CreateNoteRequest) (NoteResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]NoteResponse, error)
	Delete(ctx context.Context, id string) error
}
