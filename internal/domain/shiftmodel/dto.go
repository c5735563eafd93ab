package shiftmodel

import "github.com/staffhub/staffhub-backend-go/internal/pkg/validator"

const daySeconds = 24 * 60 * 60

type CreateShiftModelRequest struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (r *CreateShiftModelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Start < 0 || r.Start >= daySeconds {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be seconds within a day",
		})
	}
	if r.End < 0 || r.End > daySeconds {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be seconds within a day",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftModelRequest struct {
	Name  *string `json:"name"`
	Start *int    `json:"start"`
	End   *int    `json:"end"`
}

func (r *UpdateShiftModelRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Start != nil && (*r.Start < 0 || *r.Start >= daySeconds) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be seconds within a day",
		})
	}
	if r.End != nil && (*r.End < 0 || *r.End > daySeconds) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be seconds within a day",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftModelResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
