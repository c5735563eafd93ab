package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shift"
	"github.com/staffhub/staffhub-backend-go/internal/domain/staffrole"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	employee.EmployeeRepository
	staffrole.RoleRepository
}

func NewShiftService(shiftRepository shift.ShiftRepository, employeeRepository employee.EmployeeRepository, roleRepository staffrole.RoleRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository:    shiftRepository,
		EmployeeRepository: employeeRepository,
		RoleRepository:     roleRepository,
	}
}

// ToShiftResponse renders one shift with its display strings. Exported
// because the roster view reuses it for day cells.
func ToShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:         sh.ID,
		EmployeeID: sh.EmployeeID,
		RoleID:     sh.RoleID,
		RoleName:   sh.RoleName,
		Date:       sh.Date,
		Start:      sh.Start,
		End:        sh.End,
		Day:        timekit.FormatDay(sh.Date),
		DateText:   timekit.FormatDateLong(sh.Date),
		StartTime:  timekit.FormatTime(sh.Start),
		EndTime:    timekit.FormatTime(sh.End),
		Total:      timekit.FormatTotal(sh.Start, sh.End),
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, employeeID string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return shift.ShiftResponse{}, err
	}
	if req.RoleID != nil {
		if _, err := s.RoleRepository.GetByID(ctx, *req.RoleID); err != nil {
			return shift.ShiftResponse{}, err
		}
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		EmployeeID: employeeID,
		RoleID:     req.RoleID,
		Date:       normalizeDate(req.Date),
		Start:      req.Start,
		End:        req.End,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return ToShiftResponse(created), nil
}

// GetByID implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return ToShiftResponse(sh), nil
}

// ListMonth implements shift.ShiftService: one employee's shifts for the
// month with the hour totals underneath the table.
func (s *ShiftServiceImpl) ListMonth(ctx context.Context, employeeID string, month time.Time) (shift.MonthShiftsResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return shift.MonthShiftsResponse{}, err
	}

	from, to := timekit.MonthBounds(month)
	shifts, err := s.ShiftRepository.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return shift.MonthShiftsResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	resp := shift.MonthShiftsResponse{
		EmployeeID: employeeID,
		Month:      timekit.FormatMonth(from),
		Shifts:     make([]shift.ShiftResponse, 0, len(shifts)),
	}
	spans := make([]timekit.Span, 0, len(shifts))
	for _, sh := range shifts {
		resp.Shifts = append(resp.Shifts, ToShiftResponse(sh))
		spans = append(spans, timekit.ShiftSpan(sh.Start, sh.End))
	}

	resp.TotalHours, err = timekit.TotalHoursChecked(spans)
	if err != nil {
		return shift.MonthShiftsResponse{}, err
	}
	resp.MonthlyTotal = timekit.TotalMonthly(spans, 0, 0)
	return resp, nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Start != nil {
		sh.Start = *req.Start
	}
	if req.End != nil {
		sh.End = *req.End
	}
	if req.RoleID != nil {
		if *req.RoleID == "" {
			sh.RoleID = nil
		} else {
			if _, err := s.RoleRepository.GetByID(ctx, *req.RoleID); err != nil {
				return shift.ShiftResponse{}, err
			}
			sh.RoleID = req.RoleID
		}
	}

	if err := s.ShiftRepository.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}
	return s.GetByID(ctx, id)
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ShiftRepository.Delete(ctx, id)
}

// normalizeDate clamps an arbitrary in-day timestamp to its local
// midnight so one calendar day always has one canonical Date value.
func normalizeDate(ts int64) int64 {
	t := time.Unix(ts, 0).In(timekit.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, timekit.Location).Unix()
}
