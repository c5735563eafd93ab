package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	// ListByEmployeeBetween returns the employee's shifts whose Date falls
	// in [from, to], ascending by Date.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to int64) ([]Shift, error)
	// ListBetween returns all employees' shifts in [from, to].
	ListBetween(ctx context.Context, from, to int64) ([]Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string) error
}
