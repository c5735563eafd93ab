package note

import "github.com/staffhub/staffhub-backend-go/internal/pkg/validator"

type CreateNoteRequest struct {
	Content string `json:"content"`
}

func (r *CreateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NoteResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}
