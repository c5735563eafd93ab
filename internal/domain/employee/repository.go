package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error

	// AdjustVacationBalance applies delta (positive or negative) to the
	// stored balance and returns the new value. Callers run it inside the
	// same transaction as the absence-window write.
	AdjustVacationBalance(ctx context.Context, id string, delta int) (int, error)
}
