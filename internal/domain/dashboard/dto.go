package dashboard

// AbsenceRow is one absence window joined with its employee, as read by
// the dashboard repository. Start and End are epoch-seconds.
type AbsenceRow struct {
	AbsenceID    string
	EmployeeID   string
	EmployeeName string
	Kind         string
	Start        int64
	End          int64
}

// ShiftRow is one shift joined with its employee. Timestamps are
// epoch-seconds; Start/End may be zero when the time was never set.
type ShiftRow struct {
	ShiftID      string
	EmployeeID   string
	EmployeeName string
	RoleName     *string
	Date         int64
	Start        int64
	End          int64
}

type OverviewResponse struct {
	Today            string          `json:"today"`
	CurrentAbsences  []AbsenceCard   `json:"current_absences"`
	UpcomingAbsences []AbsenceCard   `json:"upcoming_absences"`
	WeekShifts       []ShiftCard     `json:"week_shifts"`
	MonthlyHours     []EmployeeHours `json:"monthly_hours"`
}

type AbsenceCard struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Kind         string `json:"kind"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	EndsInDays   *int   `json:"ends_in_days,omitempty"`
}

type ShiftCard struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	RoleName     *string `json:"role_name,omitempty"`
	Day          string  `json:"day"`
	DateText     string  `json:"date_text"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Total        string  `json:"total"`
}

type EmployeeHours struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	TotalHours   float64 `json:"total_hours"`
	MonthlyTotal string  `json:"monthly_total"`
}
