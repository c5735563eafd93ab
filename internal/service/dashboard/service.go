package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

// upcomingHorizon bounds how far ahead the dashboard looks for absences
// and shifts.
const upcomingHorizon = 7 * 24 * time.Hour

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repository dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{DashboardRepository: repository}
}

// Overview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Overview(ctx context.Context, now time.Time) (dashboard.OverviewResponse, error) {
	nowUnix := now.Unix()
	horizon := now.Add(upcomingHorizon).Unix()

	absences, err := s.DashboardRepository.AbsencesOverlapping(ctx, nowUnix, horizon)
	if err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}

	resp := dashboard.OverviewResponse{
		Today:            timekit.FormatDateLong(nowUnix),
		CurrentAbsences:  make([]dashboard.AbsenceCard, 0),
		UpcomingAbsences: make([]dashboard.AbsenceCard, 0),
	}

	for _, row := range absences {
		card := dashboard.AbsenceCard{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			Kind:         row.Kind,
			StartDate:    timekit.FormatDate(row.Start),
			EndDate:      timekit.FormatDate(row.End),
		}
		if row.Start <= nowUnix && nowUnix <= row.End {
			remaining := int((row.End - nowUnix) / (24 * 60 * 60))
			card.EndsInDays = &remaining
			resp.CurrentAbsences = append(resp.CurrentAbsences, card)
		} else {
			resp.UpcomingAbsences = append(resp.UpcomingAbsences, card)
		}
	}

	weekShifts, err := s.DashboardRepository.ShiftsBetween(ctx, dayStart(now), horizon)
	if err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}
	resp.WeekShifts = make([]dashboard.ShiftCard, 0, len(weekShifts))
	for _, row := range weekShifts {
		resp.WeekShifts = append(resp.WeekShifts, dashboard.ShiftCard{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			RoleName:     row.RoleName,
			Day:          timekit.FormatDay(row.Date),
			DateText:     timekit.FormatDateLong(row.Date),
			StartTime:    timekit.FormatTime(row.Start),
			EndTime:      timekit.FormatTime(row.End),
			Total:        timekit.FormatTotal(row.Start, row.End),
		})
	}

	resp.MonthlyHours, err = s.monthlyHours(ctx, now)
	if err != nil {
		return dashboard.OverviewResponse{}, err
	}
	return resp, nil
}

// monthlyHours aggregates, per employee, the running month's worked hours
// and the monthly total including the flat absence-day credit.
func (s *DashboardServiceImpl) monthlyHours(ctx context.Context, now time.Time) ([]dashboard.EmployeeHours, error) {
	from, to := timekit.MonthBounds(now)

	shifts, err := s.DashboardRepository.ShiftsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list month shifts: %w", err)
	}
	absences, err := s.DashboardRepository.AbsencesOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list month absences: %w", err)
	}

	type agg struct {
		name         string
		spans        []timekit.Span
		vacationDays int
		sickDays     int
	}
	byEmployee := make(map[string]*agg)
	get := func(id, name string) *agg {
		a, ok := byEmployee[id]
		if !ok {
			a = &agg{name: name}
			byEmployee[id] = a
		}
		return a
	}

	for _, row := range shifts {
		a := get(row.EmployeeID, row.EmployeeName)
		a.spans = append(a.spans, timekit.ShiftSpan(row.Start, row.End))
	}
	for _, row := range absences {
		// Credit only the in-month share of a window reaching past the
		// month edges (to+1 is the exclusive midnight closing the month).
		days, err := (timekit.Window{Start: max(row.Start, from), End: min(row.End, to+1)}).Days()
		if err != nil {
			return nil, err
		}
		a := get(row.EmployeeID, row.EmployeeName)
		if row.Kind == "vacation" {
			a.vacationDays += days
		} else {
			a.sickDays += days
		}
	}

	result := make([]dashboard.EmployeeHours, 0, len(byEmployee))
	for id, a := range byEmployee {
		result = append(result, dashboard.EmployeeHours{
			EmployeeID:   id,
			EmployeeName: a.name,
			TotalHours:   timekit.TotalHours(a.spans),
			MonthlyTotal: timekit.TotalMonthly(a.spans, a.vacationDays, a.sickDays),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeName < result[j].EmployeeName })
	return result, nil
}

func dayStart(t time.Time) int64 {
	t = t.In(timekit.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, timekit.Location).Unix()
}
