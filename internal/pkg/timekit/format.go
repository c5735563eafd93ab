package timekit

import (
	"fmt"
	"time"
)

// The formatting functions never fail: a zero timestamp is the "no time set"
// sentinel and yields an empty string (or a zero-valued duration string),
// so UI rendering stays robust against unset fields.

// FormatDay returns the weekday name ("Monday".."Sunday") of ts.
func FormatDay(ts int64) string {
	if ts == 0 {
		return ""
	}
	return local(ts).Weekday().String()
}

// FormatDate returns ts as "DD/MM/YYYY".
func FormatDate(ts int64) string {
	if ts == 0 {
		return ""
	}
	return local(ts).Format("02/01/2006")
}

// FormatDateLong returns ts as "17. August, 2023".
func FormatDateLong(ts int64) string {
	if ts == 0 {
		return ""
	}
	t := local(ts)
	return fmt.Sprintf("%d. %s, %d", t.Day(), t.Month(), t.Year())
}

// FormatMonth returns ts as "January 2021".
func FormatMonth(ts int64) string {
	if ts == 0 {
		return ""
	}
	return local(ts).Format("January 2006")
}

// FormatTime returns ts as 24-hour "HH:MM". Zero means "no time set" and
// yields "", never "00:00".
func FormatTime(ts int64) string {
	if ts == 0 {
		return ""
	}
	return local(ts).Format("15:04")
}

// FormatTotal renders the duration between start and end as "Xh Ymin",
// dropping the minutes part when it is zero ("8h") and the hours part when
// the duration is under an hour ("26min"). Either endpoint being unset
// yields "0h 0min".
func FormatTotal(start, end int64) string {
	if start == 0 || end == 0 {
		return "0h 0min"
	}
	total := end - start
	hours := total / 3600
	minutes := (total % 3600) / 60
	switch {
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	case hours == 0:
		return fmt.Sprintf("%dmin", minutes)
	default:
		return fmt.Sprintf("%dh %dmin", hours, minutes)
	}
}

// MonthBounds returns the first and last instant of t's month in Location
// as epoch-seconds: midnight of day 1 through 23:59:59 of the last day.
func MonthBounds(t time.Time) (start, end int64) {
	t = t.In(Location)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, Location)
	last := first.AddDate(0, 1, 0).Add(-time.Second)
	return first.Unix(), last.Unix()
}
