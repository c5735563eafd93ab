package shiftmodel

import "context"

type ShiftModelRepository interface {
	Create(ctx context.Context, model ShiftModel) (ShiftModel, error)
	GetByID(ctx context.Context, id string) (ShiftModel, error)
	List(ctx context.Context) ([]ShiftModel, error)
	Update(ctx context.Context, model ShiftModel) error
	Delete(ctx context.Context, id string) error
}
