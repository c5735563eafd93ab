package roster

import "github.com/staffhub/staffhub-backend-go/internal/domain/shift"

type SeedYearResponse struct {
	Year         int `json:"year"`
	DaysInserted int `json:"days_inserted"`
}

// MonthViewResponse is the schedule table for one month: every seeded
// calendar day with its shifts and the employees absent on it.
type MonthViewResponse struct {
	Month string    `json:"month"`
	Days  []DayCell `json:"days"`
}

type DayCell struct {
	Date     int64                 `json:"date"`
	Day      string                `json:"day"`
	DateText string                `json:"date_text"`
	Shifts   []shift.ShiftResponse `json:"shifts"`
	Absences []DayAbsence          `json:"absences"`
}

type DayAbsence struct {
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
}
