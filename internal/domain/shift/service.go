package shift

import (
	"context"
	"time"
)

type ShiftService interface {
	Create(ctx context.Context, employeeID string, req CreateShiftRequest) (ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	ListMonth(ctx context.Context, employeeID string, month time.Time) (MonthShiftsResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error
}
