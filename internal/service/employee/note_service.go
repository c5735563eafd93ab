package employee

import (
	"context"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/note"
)

type NoteServiceImpl struct {
	note.NoteRepository
	employee.EmployeeRepository
}

func NewNoteService(noteRepository note.NoteRepository, employeeRepository employee.EmployeeRepository) note.NoteService {
	return &NoteServiceImpl{
		NoteRepository:     noteRepository,
		EmployeeRepository: employeeRepository,
	}
}

func toNoteResponse(n note.Note) note.NoteResponse {
	return note.NoteResponse{
		ID:         n.ID,
		EmployeeID: n.EmployeeID,
		Content:    n.Content,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
}

// Create implements note.NoteService.
func (s *NoteServiceImpl) Create(ctx context.Context, employeeID string, req note.CreateNoteRequest) (note.NoteResponse, error) {
	if err := req.Validate(); err != nil {
		return note.NoteResponse{}, err
	}

	// The employee must exist; surfaces ErrEmployeeNotFound instead of a
	// foreign-key violation.
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return note.NoteResponse{}, err
	}

	created, err := s.NoteRepository.Create(ctx, note.Note{
		EmployeeID: employeeID,
		Content:    req.Content,
	})
	if err != nil {
		return note.NoteResponse{}, err
	}
	return toNoteResponse(created), nil
}

// ListByEmployee implements note.NoteService.
func (s *NoteServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]note.NoteResponse, error) {
	notes, err := s.NoteRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]note.NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toNoteResponse(n))
	}
	return resp, nil
}

// Delete implements note.NoteService.
func (s *NoteServiceImpl) Delete(ctx context.Context, id string) error {
	return s.NoteRepository.Delete(ctx, id)
}
