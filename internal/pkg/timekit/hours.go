package timekit

import "fmt"

// Span is one worked interval (shift start/end, epoch-seconds). A zero
// endpoint means the field was never set and the span contributes nothing.
type Span struct {
	Start int64
	End   int64
}

func (s Span) set() bool {
	return s.Start != 0 && s.End != 0
}

// ShiftSpan builds the aggregation Span for a shift's endpoints. A shift
// crossing midnight stores an end before its start (a "24:00" end
// normalizes to 00:00 of the same date), so the end is lifted onto the
// next day to keep the true duration. Unset endpoints pass through as the
// "no time set" sentinel.
func ShiftSpan(start, end int64) Span {
	if start != 0 && end != 0 && end < start {
		end += daySeconds
	}
	return Span{Start: start, End: end}
}

// TotalHours sums the worked duration of all set spans, in (possibly
// fractional) hours. Unset or malformed spans contribute zero; this is the
// never-throw display path.
func TotalHours(spans []Span) float64 {
	var secs int64
	for _, s := range spans {
		if s.set() {
			secs += s.End - s.Start
		}
	}
	return float64(secs) / 3600
}

// TotalHoursChecked is TotalHours with range validation: a set span whose
// end precedes its start yields ErrInvalidRange instead of a negative
// contribution. Aggregation endpoints use this variant.
func TotalHoursChecked(spans []Span) (float64, error) {
	for _, s := range spans {
		if s.set() && s.End < s.Start {
			return 0, fmt.Errorf("span [%d, %d]: %w", s.Start, s.End, ErrInvalidRange)
		}
	}
	return TotalHours(spans), nil
}

// TotalMonthly sums worked minutes across spans plus a flat eight-hour-day
// credit per vacation and sick day, and formats the result as "Xh" or
// "Xh Ymin". Unlike FormatTotal it always carries an hours component.
func TotalMonthly(spans []Span, vacationDays, sickDays int) string {
	var minutes int64
	for _, s := range spans {
		if s.set() {
			minutes += (s.End - s.Start) / 60
		}
	}
	minutes += int64(vacationDays+sickDays) * 8 * 60
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, rest)
}
