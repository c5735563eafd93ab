package employee

import (
	"context"
	"time"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error

	// Profile aggregates the month's worked hours and the absence
	// classification for one employee, as of now.
	Profile(ctx context.Context, id string, month time.Time, now time.Time) (ProfileResponse, error)
}
