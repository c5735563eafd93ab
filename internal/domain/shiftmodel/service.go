package shiftmodel

import "context"

type ShiftModelService interface {
	Create(ctx context.Context, req CreateShiftModelRequest) (ShiftModelResponse, error)
	GetByID(ctx context.Context, id string) (ShiftModelResponse, error)
	List(ctx context.Context) ([]ShiftModelResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftModelRequest) (ShiftModelResponse, error)
	Delete(ctx context.Context, id string) error
}
