package shift

import "github.com/staffhub/staffhub-backend-go/internal/pkg/validator"

type CreateShiftRequest struct {
	Date   int64   `json:"date"`
	Start  int64   `json:"start"`
	End    int64   `json:"end"`
	RoleID *string `json:"role_id"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}
	if r.RoleID != nil && !validator.IsValidUUID(*r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id must be a valid id",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	Start  *int64  `json:"start"`
	End    *int64  `json:"end"`
	RoleID *string `json:"role_id"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RoleID != nil && *r.RoleID != "" && !validator.IsValidUUID(*r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id must be a valid id",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ShiftResponse carries the raw timestamps plus the display strings the
// UI renders directly.
type ShiftResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	RoleID     *string `json:"role_id,omitempty"`
	RoleName   *string `json:"role_name,omitempty"`

	Date  int64 `json:"date"`
	Start int64 `json:"start"`
	End   int64 `json:"end"`

	Day       string `json:"day"`
	DateText  string `json:"date_text"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Total     string `json:"total"`
}

// MonthShiftsResponse is one employee's shift list for a month with the
// aggregated totals underneath the table.
type MonthShiftsResponse struct {
	EmployeeID   string          `json:"employee_id"`
	Month        string          `json:"month"`
	Shifts       []ShiftResponse `json:"shifts"`
	TotalHours   float64         `json:"total_hours"`
	MonthlyTotal string          `json:"monthly_total"`
}
