package absence

import (
	"context"
	"time"
)

type AbsenceService interface {
	// Create inserts the window; for vacations it also decrements the
	// employee's vacation-day balance in the same transaction.
	Create(ctx context.Context, employeeID string, req CreateAbsenceRequest) (AbsenceResponse, error)
	// Delete removes the window; for vacations it restores the balance in
	// the same transaction.
	Delete(ctx context.Context, id string) error
	ListByEmployee(ctx context.Context, employeeID string, kind *Kind) ([]AbsenceResponse, error)
	// Status classifies the employee's windows against now.
	Status(ctx context.Context, employeeID string, now time.Time) (StatusResponse, error)
}
