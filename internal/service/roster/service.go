package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/absence"
	"github.com/staffhub/staffhub-backend-go/internal/domain/roster"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shift"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
	shiftservice "github.com/staffhub/staffhub-backend-go/internal/service/shift"
)

type RosterServiceImpl struct {
	roster.CalendarDayRepository
	shift.ShiftRepository
	absence.AbsenceRepository
}

func NewRosterService(calendarDayRepository roster.CalendarDayRepository, shiftRepository shift.ShiftRepository, absenceRepository absence.AbsenceRepository) roster.RosterService {
	return &RosterServiceImpl{
		CalendarDayRepository: calendarDayRepository,
		ShiftRepository:       shiftRepository,
		AbsenceRepository:     absenceRepository,
	}
}

// SeedYear implements roster.RosterService. Re-seeding an already-seeded
// year inserts nothing and reports zero days.
func (s *RosterServiceImpl) SeedYear(ctx context.Context, year int) (roster.SeedYearResponse, error) {
	inserted, err := s.CalendarDayRepository.SeedDays(ctx, timekit.YearDays(year))
	if err != nil {
		return roster.SeedYearResponse{}, fmt.Errorf("failed to seed calendar days: %w", err)
	}
	return roster.SeedYearResponse{Year: year, DaysInserted: inserted}, nil
}

// MonthView implements roster.RosterService: every seeded day of the
// month with its shifts and the employees absent on it, optionally
// narrowed to one employee.
func (s *RosterServiceImpl) MonthView(ctx context.Context, month time.Time, employeeID *string) (roster.MonthViewResponse, error) {
	from, to := timekit.MonthBounds(month)

	days, err := s.CalendarDayRepository.ListBetween(ctx, from, to)
	if err != nil {
		return roster.MonthViewResponse{}, fmt.Errorf("failed to list calendar days: %w", err)
	}
	if len(days) == 0 {
		return roster.MonthViewResponse{}, roster.ErrMonthNotSeeded
	}

	var shifts []shift.Shift
	if employeeID != nil {
		shifts, err = s.ShiftRepository.ListByEmployeeBetween(ctx, *employeeID, from, to)
	} else {
		shifts, err = s.ShiftRepository.ListBetween(ctx, from, to)
	}
	if err != nil {
		return roster.MonthViewResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	absences, err := s.AbsenceRepository.ListOverlapping(ctx, from, to)
	if err != nil {
		return roster.MonthViewResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}
	if employeeID != nil {
		filtered := absences[:0]
		for _, a := range absences {
			if a.EmployeeID == *employeeID {
				filtered = append(filtered, a)
			}
		}
		absences = filtered
	}

	shiftsByDay := make(map[int64][]shift.ShiftResponse)
	for _, sh := range shifts {
		shiftsByDay[sh.Date] = append(shiftsByDay[sh.Date], shiftservice.ToShiftResponse(sh))
	}

	dates := make([]int64, 0, len(days))
	for _, day := range days {
		dates = append(dates, day.Date)
	}
	absencesByDay := make(map[int64][]roster.DayAbsence)
	for _, a := range absences {
		window := []timekit.Window{{Start: a.Start, End: a.End}}
		for _, d := range timekit.DatesInWindows(window, dates) {
			absencesByDay[d] = append(absencesByDay[d], roster.DayAbsence{
				EmployeeID: a.EmployeeID,
				Kind:       string(a.Kind),
			})
		}
	}

	resp := roster.MonthViewResponse{
		Month: timekit.FormatMonth(from),
		Days:  make([]roster.DayCell, 0, len(days)),
	}
	for _, day := range days {
		cell := roster.DayCell{
			Date:     day.Date,
			Day:      timekit.FormatDay(day.Date),
			DateText: timekit.FormatDateLong(day.Date),
			Shifts:   shiftsByDay[day.Date],
			Absences: absencesByDay[day.Date],
		}
		if cell.Shifts == nil {
			cell.Shifts = make([]shift.ShiftResponse, 0)
		}
		if cell.Absences == nil {
			cell.Absences = make([]roster.DayAbsence, 0)
		}
		resp.Days = append(resp.Days, cell)
	}
	return resp, nil
}
