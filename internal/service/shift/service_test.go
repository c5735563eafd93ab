package shift

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shift"
	"github.com/staffhub/staffhub-backend-go/internal/domain/staffrole"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

// Monday 2021-02-01 00:00 in Europe/Berlin.
const mondayMidnight = int64(1612134000)

const barRoleID = "0194e7a0-1111-7111-8111-111111111111"

func TestMain(m *testing.M) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic(err)
	}
	timekit.Location = loc
	os.Exit(m.Run())
}

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
	nextID int
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	for _, existing := range f.shifts {
		if existing.EmployeeID == s.EmployeeID && existing.Date == s.Date {
			return shift.Shift{}, shift.ErrShiftExists
		}
	}
	f.nextID++
	s.ID = string(rune('a' + f.nextID))
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
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
	var out []shift.Shift
	for _, s := range f.shifts {
		if s.Date >= from && s.Date <= to {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error {
	if _, ok := f.shifts[s.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	f.shifts[s.ID] = s
	return nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

type fakeEmployeeRepo struct{ known map[string]bool }

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !f.known[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) AdjustVacationBalance(ctx context.Context, id string, delta int) (int, error) {
	return 0, nil
}

type fakeRoleRepo struct{ known map[string]string }

func (f *fakeRoleRepo) Create(ctx context.Context, role staffrole.Role) (staffrole.Role, error) {
	return role, nil
}

func (f *fakeRoleRepo) GetByID(ctx context.Context, id string) (staffrole.Role, error) {
	name, ok := f.known[id]
	if !ok {
		return staffrole.Role{}, staffrole.ErrRoleNotFound
	}
	return staffrole.Role{ID: id, Name: name}, nil
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
	return nil, nil
}

func newShiftService(repo *fakeShiftRepo) shift.ShiftService {
	return NewShiftService(
		repo,
		&fakeEmployeeRepo{known: map[string]bool{"emp-1": true}},
		&fakeRoleRepo{known: map[string]string{barRoleID: "Bar"}},
	)
}

func TestCreateFormatsResponse(t *testing.T) {
	svc := newShiftService(newFakeShiftRepo())

	resp, err := svc.Create(context.Background(), "emp-1", shift.CreateShiftRequest{
		Date:  mondayMidnight,
		Start: mondayMidnight + 9*3600,
		End:   mondayMidnight + 17*3600 + 30*60,
	})
	require.NoError(t, err)

	assert.Equal(t, "Monday", resp.Day)
	assert.Equal(t, "1. February, 2021", resp.DateText)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "17:30", resp.EndTime)
	assert.Equal(t, "8h 30min", resp.Total)
}

func TestCreateNormalizesDateToMidnight(t *testing.T) {
	svc := newShiftService(newFakeShiftRepo())

	resp, err := svc.Create(context.Background(), "emp-1", shift.CreateShiftRequest{
		Date: mondayMidnight + 11*3600,
	})
	require.NoError(t, err)
	assert.Equal(t, mondayMidnight, resp.Date)
	// Unset times render as empty, not 00:00.
	assert.Equal(t, "", resp.StartTime)
	assert.Equal(t, "0h 0min", resp.Total)
}

func TestCreateSecondShiftSameDayConflicts(t *testing.T) {
	svc := newShiftService(newFakeShiftRepo())

	_, err := svc.Create(context.Background(), "emp-1", shift.CreateShiftRequest{Date: mondayMidnight})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "emp-1", shift.CreateShiftRequest{Date: mondayMidnight + 3600})
	assert.ErrorIs(t, err, shift.ErrShiftExists)
}

func TestCreateUnknownRole(t *testing.T) {
	svc := newShiftService(newFakeShiftRepo())
	badRole := "0194e7a0-0000-7000-8000-000000000000"

	_, err := svc.Create(context.Background(), "emp-1", shift.CreateShiftRequest{
		Date:   mondayMidnight,
		RoleID: &badRole,
	})
	assert.ErrorIs(t, err, staffrole.ErrRoleNotFound)
}

func TestListMonthTotals(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newShiftService(repo)

	day := int64(24 * 3600)
	for i := int64(0); i < 3; i++ {
		date := mondayMidnight + i*day
		_, err := svc.Create(context.Background(), "emp-1", shift.CreateShiftRequest{
			Date:  date,
			Start: date + 9*3600,
			End:   date + 17*3600,
		})
		require.NoError(t, err)
	}

	month := time.Date(2021, time.February, 15, 0, 0, 0, 0, timekit.Location)
	resp, err := svc.ListMonth(context.Background(), "emp-1", month)
	require.NoError(t, err)

	assert.Equal(t, "February 2021", resp.Month)
	assert.Len(t, resp.Shifts, 3)
	assert.Equal(t, 24.0, resp.TotalHours)
	assert.Equal(t, "24h", resp.MonthlyTotal)
}

func TestListMonthAcceptsOvernightShift(t *testing.T) {
	svc := newShiftService(newFakeShiftRepo())

	// 22:00 through midnight: the stored end precedes the start, which the
	// display path accepts as the midnight-crossing special case.
	created, err := svc.Create(context.Background(), "emp-1", shift.CreateShiftRequest{
		Date:  mondayMidnight,
		Start: mondayMidnight + 22*3600,
		End:   mondayMidnight,
	})
	require.NoError(t, err)
	assert.Equal(t, "22:00", created.StartTime)

	month := time.Date(2021, time.February, 15, 0, 0, 0, 0, timekit.Location)
	resp, err := svc.ListMonth(context.Background(), "emp-1", month)
	require.NoError(t, err)
	assert.Equal(t, 2.0, resp.TotalHours)
	assert.Equal(t, "2h", resp.MonthlyTotal)
}

func TestUpdateClearsRole(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newShiftService(repo)
	roleID := barRoleID

	created, err := svc.Create(context.Background(), "emp-1", shift.CreateShiftRequest{
		Date:   mondayMidnight,
		RoleID: &roleID,
	})
	require.NoError(t, err)

	empty := ""
	updated, err := svc.Update(context.Background(), created.ID, shift.UpdateShiftRequest{RoleID: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.RoleID)
}
