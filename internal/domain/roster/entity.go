package roster

// CalendarDay is a single date in the roster, one row per distinct
// calendar date system-wide, independent of any employee. Date is the
// day's local midnight in epoch-seconds.
type CalendarDay struct {
	Date int64
}
