package employee

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/absence"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shift"
	"github.com/staffhub/staffhub-backend-go/internal/domain/staffrole"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

func TestMain(m *testing.M) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic(err)
	}
	timekit.Location = loc
	os.Exit(m.Run())
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = "new-id"
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) AdjustVacationBalance(ctx context.Context, id string, delta int) (int, error) {
	emp := f.employees[id]
	emp.VacationDaysBalance += delta
	f.employees[id] = emp
	return emp.VacationDaysBalance, nil
}

type fakeRoleRepo struct {
	byEmployee map[string][]staffrole.Role
}

func (f *fakeRoleRepo) Create(ctx context.Context, role staffrole.Role) (staffrole.Role, error) {
	return role, nil
}

func (f *fakeRoleRepo) GetByID(ctx context.Context, id string) (staffrole.Role, error) {
	return staffrole.Role{}, staffrole.ErrRoleNotFound
}

func (f *fakeRoleRepo) List(ctx context.Context) ([]staffrole.Role, error) { return nil, nil }

func (f *fakeRoleRepo) Update(ctx context.Context, role staffrole.Role) error { return nil }

func (f *fakeRoleRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeRoleRepo) AssignToEmployee(ctx context.Context, roleID, employeeID string) error {
	return nil
}

func (f *fakeRoleRepo) RemoveFromEmployee(ctx context.Context, roleID, employeeID string) error {
	return nil
}

func (f *fakeRoleRepo) ListByEmployee(ctx context.Context, employeeID string) ([]staffrole.Role, error) {
	return f.byEmployee[employeeID], nil
}

type fakeShiftRepo struct {
	shifts []shift.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to int64) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if s.EmployeeID == employeeID && s.Date >= from && s.Date <= to {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) ListBetween(ctx context.Context, from, to int64) ([]shift.Shift, error) {
	return f.shifts, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error { return nil }

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeAbsenceRepo struct {
	absences []absence.Absence
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	return a, nil
}

func (f *fakeAbsenceRepo) GetByID(ctx context.Context, id string) (absence.Absence, error) {
	return absence.Absence{}, absence.ErrAbsenceNotFound
}

func (f *fakeAbsenceRepo) ListByEmployee(ctx context.Context, employeeID string, kind *absence.Kind) ([]absence.Absence, error) {
	var out []absence.Absence
	for _, a := range f.absences {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAbsenceRepo) ListOverlapping(ctx context.Context, from, to int64) ([]absence.Absence, error) {
	return f.absences, nil
}

func (f *fakeAbsenceRepo) Delete(ctx context.Context, id string) error { return nil }

func midnight(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, timekit.Location).Unix()
}

func TestCreateValidation(t *testing.T) {
	svc := NewEmployeeService(nil, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeRoleRepo{}, &fakeShiftRepo{}, &fakeAbsenceRepo{})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "  "})
	assert.Error(t, err)

	badEmail := "not-an-email"
	_, err = svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "Anna", Email: &badEmail})
	assert.Error(t, err)

	balance := 25
	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "Anna", VacationDaysBalance: &balance})
	require.NoError(t, err)
	assert.Equal(t, 25, resp.VacationDaysBalance)
}

func TestProfileAggregates(t *testing.T) {
	feb1 := midnight(2021, time.February, 1)
	feb2 := midnight(2021, time.February, 2)

	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Anna", VacationDaysBalance: 20},
	}}
	roleRepo := &fakeRoleRepo{byEmployee: map[string][]staffrole.Role{
		"emp-1": {{ID: "r1", Name: "Bar"}},
	}}
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: feb1, Start: feb1 + 9*3600, End: feb1 + 17*3600},
		{ID: "s2", EmployeeID: "emp-1", Date: feb2, Start: feb2 + 9*3600, End: feb2 + 16*3600 + 30*60},
	}}
	absenceRepo := &fakeAbsenceRepo{absences: []absence.Absence{
		// Current vacation within February.
		{ID: "a1", EmployeeID: "emp-1", Kind: absence.KindVacation, Start: midnight(2021, time.February, 10), End: midnight(2021, time.February, 12)},
		// Past sick leave, outside the month: classified but not credited.
		{ID: "a2", EmployeeID: "emp-1", Kind: absence.KindSick, Start: midnight(2021, time.January, 5), End: midnight(2021, time.January, 6)},
	}}

	svc := NewEmployeeService(nil, empRepo, roleRepo, shiftRepo, absenceRepo)

	month := time.Date(2021, time.February, 1, 0, 0, 0, 0, timekit.Location)
	now := time.Unix(midnight(2021, time.February, 11), 0)
	profile, err := svc.Profile(context.Background(), "emp-1", month, now)
	require.NoError(t, err)

	assert.Equal(t, "February 2021", profile.Month)
	assert.Equal(t, []string{"Bar"}, profile.Employee.Roles)

	// 8h + 7h30min worked.
	assert.Equal(t, 15.5, profile.TotalHours)
	// Plus 2 credited vacation days at 8h each: 15h30min + 16h.
	assert.Equal(t, "31h 30min", profile.MonthlyHours)

	require.NotNil(t, profile.Absences.Current)
	assert.Equal(t, "a1", profile.Absences.Current.ID)
	require.NotNil(t, profile.Absences.EndsInDays)
	assert.Equal(t, 1, *profile.Absences.EndsInDays)
	require.Len(t, profile.Absences.Past, 1)
	assert.Equal(t, "a2", profile.Absences.Past[0].ID)
	assert.Empty(t, profile.Absences.Upcoming)
}

func TestProfileCreditsOnlyInMonthAbsenceDays(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Anna"},
	}}
	// A 20-day vacation straddling the January/February boundary.
	absenceRepo := &fakeAbsenceRepo{absences: []absence.Absence{
		{ID: "a1", EmployeeID: "emp-1", Kind: absence.KindVacation,
			Start: midnight(2021, time.January, 20), End: midnight(2021, time.February, 9)},
	}}
	svc := NewEmployeeService(nil, empRepo, &fakeRoleRepo{}, &fakeShiftRepo{}, absenceRepo)

	now := time.Unix(midnight(2021, time.February, 5), 0)

	// February gets the 8 days falling inside it, not all 20.
	february := time.Date(2021, time.February, 1, 0, 0, 0, 0, timekit.Location)
	profile, err := svc.Profile(context.Background(), "emp-1", february, now)
	require.NoError(t, err)
	assert.Equal(t, "64h", profile.MonthlyHours)
	require.NotNil(t, profile.Absences.Current)
	assert.Equal(t, 20, profile.Absences.Current.Days)

	// January gets the remaining 12; the split sums to the full window.
	january := time.Date(2021, time.January, 1, 0, 0, 0, 0, timekit.Location)
	profile, err = svc.Profile(context.Background(), "emp-1", january, now)
	require.NoError(t, err)
	assert.Equal(t, "96h", profile.MonthlyHours)
}

func TestProfileUnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(nil, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeRoleRepo{}, &fakeShiftRepo{}, &fakeAbsenceRepo{})

	_, err := svc.Profile(context.Background(), "ghost", time.Now(), time.Now())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListDefaultsPagination(t *testing.T) {
	svc := NewEmployeeService(nil, &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Anna"},
	}}, &fakeRoleRepo{}, &fakeShiftRepo{}, &fakeAbsenceRepo{})

	resp, err := svc.List(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, int64(1), resp.TotalCount)
}
