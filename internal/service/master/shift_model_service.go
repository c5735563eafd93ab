package master

import (
	"context"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/shiftmodel"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

type ShiftModelServiceImpl struct {
	shiftmodel.ShiftModelRepository
}

func NewShiftModelService(repository shiftmodel.ShiftModelRepository) shiftmodel.ShiftModelService {
	return &ShiftModelServiceImpl{ShiftModelRepository: repository}
}

// toShiftModelResponse renders the seconds-of-day template bounds as
// "HH:MM" by projecting them onto an arbitrary local day.
func toShiftModelResponse(m shiftmodel.ShiftModel) shiftmodel.ShiftModelResponse {
	midnight := time.Date(2000, time.January, 1, 0, 0, 0, 0, timekit.Location).Unix()
	return shiftmodel.ShiftModelResponse{
		ID:        m.ID,
		Name:      m.Name,
		Start:     m.Start,
		End:       m.End,
		StartTime: timekit.FormatTime(midnight + int64(m.Start)),
		EndTime:   timekit.FormatTime(midnight + int64(m.End)),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements shiftmodel.ShiftModelService.
func (s *ShiftModelServiceImpl) Create(ctx context.Context, req shiftmodel.CreateShiftModelRequest) (shiftmodel.ShiftModelResponse, error) {
	if err := req.Validate(); err != nil {
		return shiftmodel.ShiftModelResponse{}, err
	}

	created, err := s.ShiftModelRepository.Create(ctx, shiftmodel.ShiftModel{
		Name:  req.Name,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		return shiftmodel.ShiftModelResponse{}, err
	}
	return toShiftModelResponse(created), nil
}

// GetByID implements shiftmodel.ShiftModelService.
func (s *ShiftModelServiceImpl) GetByID(ctx context.Context, id string) (shiftmodel.ShiftModelResponse, error) {
	model, err := s.ShiftModelRepository.GetByID(ctx, id)
	if err != nil {
		return shiftmodel.ShiftModelResponse{}, err
	}
	return toShiftModelResponse(model), nil
}

// List implements shiftmodel.ShiftModelService.
func (s *ShiftModelServiceImpl) List(ctx context.Context) ([]shiftmodel.ShiftModelResponse, error) {
	models, err := s.ShiftModelRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]shiftmodel.ShiftModelResponse, 0, len(models))
	for _, m := range models {
		resp = append(resp, toShiftModelResponse(m))
	}
	return resp, nil
}

// Update implements shiftmodel.ShiftModelService.
func (s *ShiftModelServiceImpl) Update(ctx context.Context, id string, req shiftmodel.UpdateShiftModelRequest) (shiftmodel.ShiftModelResponse, error) {
	if err := req.Validate(); err != nil {
		return shiftmodel.ShiftModelResponse{}, err
	}

	model, err := s.ShiftModelRepository.GetByID(ctx, id)
	if err != nil {
		return shiftmodel.ShiftModelResponse{}, err
	}
	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.Start != nil {
		model.Start = *req.Start
	}
	if req.End != nil {
		model.End = *req.End
	}

	if err := s.ShiftModelRepository.Update(ctx, model); err != nil {
		return shiftmodel.ShiftModelResponse{}, err
	}
	return s.GetByID(ctx, id)
}

// Delete implements shiftmodel.ShiftModelService.
func (s *ShiftModelServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ShiftModelRepository.Delete(ctx, id)
}
