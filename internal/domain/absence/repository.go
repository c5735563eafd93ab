package absence

import "context"

type AbsenceRepository interface {
	Create(ctx context.Context, a Absence) (Absence, error)
	GetByID(ctx context.Context, id string) (Absence, error)
	// ListByEmployee returns the employee's windows, ascending by Start.
	// kind == nil lists both vacations and sick leaves.
	ListByEmployee(ctx context.Context, employeeID string, kind *Kind) ([]Absence, error)
	// ListOverlapping returns every window intersecting [from, to].
	ListOverlapping(ctx context.Context, from, to int64) ([]Absence, error)
	Delete(ctx context.Context, id string) error
}
