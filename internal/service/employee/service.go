package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/absence"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shift"
	"github.com/staffhub/staffhub-backend-go/internal/domain/staffrole"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	staffrole.RoleRepository
	shift.ShiftRepository
	absence.AbsenceRepository
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository, roleRepository staffrole.RoleRepository, shiftRepository shift.ShiftRepository, absenceRepository absence.AbsenceRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		RoleRepository:     roleRepository,
		ShiftRepository:    shiftRepository,
		AbsenceRepository:  absenceRepository,
	}
}

func toEmployeeResponse(emp employee.Employee, roles []staffrole.Role) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                  emp.ID,
		Name:                emp.Name,
		Email:               emp.Email,
		Phone:               emp.Phone,
		Address:             emp.Address,
		VacationDaysBalance: emp.VacationDaysBalance,
		CreatedAt:           emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           emp.UpdatedAt.Format(time.RFC3339),
	}
	for _, r := range roles {
		resp.Roles = append(resp.Roles, r.Name)
	}
	return resp
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if req.VacationDaysBalance != nil {
		emp.VacationDaysBalance = *req.VacationDaysBalance
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(created, nil), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	roles, err := s.RoleRepository.ListByEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to list employee roles: %w", err)
	}
	return toEmployeeResponse(emp, roles), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, toEmployeeResponse(emp, nil))
	}
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = req.Email
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.VacationDaysBalance != nil {
		emp.VacationDaysBalance = *req.VacationDaysBalance
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

// Profile implements employee.EmployeeService. It aggregates the month's
// worked hours from the employee's shifts and classifies their absence
// windows against now.
func (s *EmployeeServiceImpl) Profile(ctx context.Context, id string, month time.Time, now time.Time) (employee.ProfileResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	roles, err := s.RoleRepository.ListByEmployee(ctx, id)
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to list employee roles: %w", err)
	}

	from, to := timekit.MonthBounds(month)
	shifts, err := s.ShiftRepository.ListByEmployeeBetween(ctx, id, from, to)
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	spans := make([]timekit.Span, 0, len(shifts))
	for _, sh := range shifts {
		spans = append(spans, timekit.ShiftSpan(sh.Start, sh.End))
	}
	totalHours, err := timekit.TotalHoursChecked(spans)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	absences, err := s.AbsenceRepository.ListByEmployee(ctx, id, nil)
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}

	status, vacationDays, sickDays, err := classifyAbsences(absences, from, to, now.Unix())
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	return employee.ProfileResponse{
		Employee:     toEmployeeResponse(emp, roles),
		Month:        timekit.FormatMonth(from),
		MonthlyHours: timekit.TotalMonthly(spans, vacationDays, sickDays),
		TotalHours:   totalHours,
		Absences:     status,
	}, nil
}

// classifyAbsences partitions the employee's windows against now and
// counts, per kind, the in-month days credited to monthly hours.
func classifyAbsences(absences []absence.Absence, monthFrom, monthTo int64, now int64) (employee.AbsenceStatus, int, int, error) {
	var status employee.AbsenceStatus
	status.Past = make([]employee.AbsenceInfo, 0)
	status.Upcoming = make([]employee.AbsenceInfo, 0)

	windows := make([]timekit.Window, len(absences))
	for i, a := range absences {
		windows[i] = timekit.Window{Start: a.Start, End: a.End}
	}
	classified, err := timekit.Classify(windows, now)
	if err != nil {
		return employee.AbsenceStatus{}, 0, 0, err
	}

	var vacationDays, sickDays int
	for _, a := range absences {
		info, err := toAbsenceInfo(a)
		if err != nil {
			return employee.AbsenceStatus{}, 0, 0, err
		}

		// Absence-day credit only counts the in-month share: a window
		// reaching past either month edge is clamped before its days are
		// counted (monthTo+1 is the exclusive midnight closing the month).
		if a.Start <= monthTo && a.End >= monthFrom {
			credited, err := (timekit.Window{
				Start: max(a.Start, monthFrom),
				End:   min(a.End, monthTo+1),
			}).Days()
			if err != nil {
				return employee.AbsenceStatus{}, 0, 0, err
			}
			switch a.Kind {
			case absence.KindVacation:
				vacationDays += credited
			case absence.KindSick:
				sickDays += credited
			}
		}

		w := timekit.Window{Start: a.Start, End: a.End}
		switch {
		case classified.Current != nil && *classified.Current == w && status.Current == nil:
			cur := info
			status.Current = &cur
			remaining := int((a.End - now) / (24 * 60 * 60))
			status.EndsInDays = &remaining
		case a.End < now:
			status.Past = append(status.Past, info)
		default:
			status.Upcoming = append(status.Upcoming, info)
		}
	}
	return status, vacationDays, sickDays, nil
}

func toAbsenceInfo(a absence.Absence) (employee.AbsenceInfo, error) {
	days, err := (timekit.Window{Start: a.Start, End: a.End}).Days()
	if err != nil {
		return employee.AbsenceInfo{}, err
	}
	return employee.AbsenceInfo{
		ID:        a.ID,
		Kind:      string(a.Kind),
		StartDate: timekit.FormatDate(a.Start),
		EndDate:   timekit.FormatDate(a.End),
		Days:      days,
	}, nil
}
