package dashboard

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
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

type fakeDashboardRepo struct {
	absences []dashboard.AbsenceRow
	shifts   []dashboard.ShiftRow
}

func (f *fakeDashboardRepo) AbsencesOverlapping(ctx context.Context, from, to int64) ([]dashboard.AbsenceRow, error) {
	var out []dashboard.AbsenceRow
	for _, row := range f.absences {
		if row.Start <= to && row.End >= from {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeDashboardRepo) ShiftsBetween(ctx context.Context, from, to int64) ([]dashboard.ShiftRow, error) {
	var out []dashboard.ShiftRow
	for _, row := range f.shifts {
		if row.Date >= from && row.Date <= to {
			out = append(out, row)
		}
	}
	return out, nil
}

func midnight(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, timekit.Location).Unix()
}

func TestOverviewSplitsCurrentAndUpcoming(t *testing.T) {
	feb10 := midnight(2021, time.February, 10)
	repo := &fakeDashboardRepo{
		absences: []dashboard.AbsenceRow{
			{AbsenceID: "cur", EmployeeID: "e1", EmployeeName: "Anna", Kind: "vacation",
				Start: midnight(2021, time.February, 8), End: midnight(2021, time.February, 12)},
			{AbsenceID: "up", EmployeeID: "e2", EmployeeName: "Ben", Kind: "sick",
				Start: midnight(2021, time.February, 14), End: midnight(2021, time.February, 15)},
		},
	}
	svc := NewDashboardService(repo)

	resp, err := svc.Overview(context.Background(), time.Unix(feb10, 0))
	require.NoError(t, err)

	assert.Equal(t, "10. February, 2021", resp.Today)

	require.Len(t, resp.CurrentAbsences, 1)
	cur := resp.CurrentAbsences[0]
	assert.Equal(t, "Anna", cur.EmployeeName)
	require.NotNil(t, cur.EndsInDays)
	assert.Equal(t, 2, *cur.EndsInDays)

	require.Len(t, resp.UpcomingAbsences, 1)
	assert.Equal(t, "Ben", resp.UpcomingAbsences[0].EmployeeName)
	assert.Nil(t, resp.UpcomingAbsences[0].EndsInDays)
}

func TestOverviewWeekShifts(t *testing.T) {
	feb10 := midnight(2021, time.February, 10)
	role := "Bar"
	repo := &fakeDashboardRepo{
		shifts: []dashboard.ShiftRow{
			{ShiftID: "in", EmployeeID: "e1", EmployeeName: "Anna", RoleName: &role,
				Date: feb10, Start: feb10 + 9*3600, End: feb10 + 17*3600},
			{ShiftID: "out", EmployeeID: "e2", EmployeeName: "Ben",
				Date: midnight(2021, time.March, 1)},
		},
	}
	svc := NewDashboardService(repo)

	resp, err := svc.Overview(context.Background(), time.Unix(feb10+12*3600, 0))
	require.NoError(t, err)

	require.Len(t, resp.WeekShifts, 1)
	card := resp.WeekShifts[0]
	assert.Equal(t, "Anna", card.EmployeeName)
	assert.Equal(t, "Wednesday", card.Day)
	assert.Equal(t, "09:00", card.StartTime)
	assert.Equal(t, "8h", card.Total)
}

func TestMonthlyHoursAggregation(t *testing.T) {
	feb1 := midnight(2021, time.February, 1)
	feb2 := midnight(2021, time.February, 2)
	repo := &fakeDashboardRepo{
		shifts: []dashboard.ShiftRow{
			{ShiftID: "s1", EmployeeID: "e1", EmployeeName: "Anna", Date: feb1, Start: feb1 + 9*3600, End: feb1 + 17*3600},
			{ShiftID: "s2", EmployeeID: "e1", EmployeeName: "Anna", Date: feb2, Start: feb2 + 9*3600, End: feb2 + 17*3600},
			{ShiftID: "s3", EmployeeID: "e2", EmployeeName: "Ben", Date: feb1, Start: feb1 + 10*3600, End: feb1 + 14*3600},
		},
		absences: []dashboard.AbsenceRow{
			{AbsenceID: "a1", EmployeeID: "e2", EmployeeName: "Ben", Kind: "vacation",
				Start: midnight(2021, time.February, 20), End: midnight(2021, time.February, 22)},
		},
	}
	svc := NewDashboardService(repo)

	resp, err := svc.Overview(context.Background(), time.Unix(feb2+12*3600, 0))
	require.NoError(t, err)

	require.Len(t, resp.MonthlyHours, 2)
	// Sorted by employee name.
	anna, ben := resp.MonthlyHours[0], resp.MonthlyHours[1]

	assert.Equal(t, "Anna", anna.EmployeeName)
	assert.Equal(t, 16.0, anna.TotalHours)
	assert.Equal(t, "16h", anna.MonthlyTotal)

	assert.Equal(t, "Ben", ben.EmployeeName)
	assert.Equal(t, 4.0, ben.TotalHours)
	// 4h worked plus 2 credited vacation days.
	assert.Equal(t, "20h", ben.MonthlyTotal)
}

func TestMonthlyHoursClampsStraddlingAbsence(t *testing.T) {
	feb2 := midnight(2021, time.February, 2)
	repo := &fakeDashboardRepo{
		shifts: []dashboard.ShiftRow{
			{ShiftID: "s1", EmployeeID: "e1", EmployeeName: "Anna", Date: feb2, Start: feb2 + 9*3600, End: feb2 + 17*3600},
		},
		absences: []dashboard.AbsenceRow{
			// 20-day vacation straddling the month boundary: only the 8
			// February days are credited.
			{AbsenceID: "a1", EmployeeID: "e1", EmployeeName: "Anna", Kind: "vacation",
				Start: midnight(2021, time.January, 20), End: midnight(2021, time.February, 9)},
		},
	}
	svc := NewDashboardService(repo)

	resp, err := svc.Overview(context.Background(), time.Unix(feb2+12*3600, 0))
	require.NoError(t, err)

	require.Len(t, resp.MonthlyHours, 1)
	anna := resp.MonthlyHours[0]
	assert.Equal(t, 8.0, anna.TotalHours)
	// 8h worked plus 8 credited vacation days.
	assert.Equal(t, "72h", anna.MonthlyTotal)
}
