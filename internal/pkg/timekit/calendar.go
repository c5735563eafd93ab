package timekit

import "time"

// YearDays returns one epoch-second midnight (in Location) per calendar day
// of year, Jan 1 through Dec 31. Length is 365 or 366 per the Gregorian
// leap rule, which time.AddDate applies for us.
func YearDays(year int) []int64 {
	days := make([]int64, 0, 366)
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, Location); d.Year() == year; d = d.AddDate(0, 0, 1) {
		days = append(days, d.Unix())
	}
	return days
}

// MonthDays returns one epoch-second midnight per day of t's month.
func MonthDays(t time.Time) []int64 {
	t = t.In(Location)
	days := make([]int64, 0, 31)
	for d := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, Location); d.Month() == t.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Unix())
	}
	return days
}
