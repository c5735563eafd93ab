package absence

import (
	"strings"

	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type CreateAbsenceRequest struct {
	Kind  string `json:"kind"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, KindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: " + strings.Join(KindValues, ", "),
		})
	}
	if r.Start == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start is required",
		})
	}
	if r.End == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end is required",
		})
	}
	if r.Start != 0 && r.End != 0 && r.End < r.Start {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must not precede start",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	Start      int64  `json:"start"`
	End        int64  `json:"end"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Days       int    `json:"days"`

	// Balance is the employee's vacation-day balance after the operation;
	// only set on vacation create/delete.
	Balance *int `json:"balance,omitempty"`
}

// StatusResponse classifies one employee's windows relative to now.
type StatusResponse struct {
	Current    *AbsenceResponse  `json:"current,omitempty"`
	EndsInDays *int              `json:"ends_in_days,omitempty"`
	Past       []AbsenceResponse `json:"past"`
	Upcoming   []AbsenceResponse `json:"upcoming"`
}
