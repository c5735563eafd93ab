package employee

import (
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name                string  `json:"name"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	Address             *string `json:"address"`
	VacationDaysBalance *int    `json:"vacation_days_balance"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}
	if r.VacationDaysBalance != nil && *r.VacationDaysBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_days_balance",
			Message: "vacation_days_balance must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name                *string `json:"name"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	Address             *string `json:"address"`
	VacationDaysBalance *int    `json:"vacation_days_balance"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}
	if r.VacationDaysBalance != nil && *r.VacationDaysBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_days_balance",
			Message: "vacation_days_balance must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Email               *string  `json:"email,omitempty"`
	Phone               *string  `json:"phone,omitempty"`
	Address             *string  `json:"address,omitempty"`
	VacationDaysBalance int      `json:"vacation_days_balance"`
	Roles               []string `json:"roles,omitempty"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}

type EmployeeFilter struct {
	Name  *string
	Page  int
	Limit int
}

// ProfileResponse is the employee profile card: the running month's worked
// hours plus the absence status, all pre-formatted for direct rendering.
type ProfileResponse struct {
	Employee     EmployeeResponse `json:"employee"`
	Month        string           `json:"month"`
	MonthlyHours string           `json:"monthly_hours"`
	TotalHours   float64          `json:"total_hours"`
	Absences     AbsenceStatus    `json:"absences"`
}

// AbsenceStatus mirrors the past/current/future window classification.
type AbsenceStatus struct {
	Current    *AbsenceInfo  `json:"current,omitempty"`
	EndsInDays *int          `json:"ends_in_days,omitempty"`
	Past       []AbsenceInfo `json:"past"`
	Upcoming   []AbsenceInfo `json:"upcoming"`
}

type AbsenceInfo struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}
