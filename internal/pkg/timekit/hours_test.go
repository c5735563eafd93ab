package timekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// thirtyDayFixture builds a month of day records: 19 eight-hour shifts,
// one seven-hour shift and ten days off. Total 159h.
func thirtyDayFixture() []Span {
	days := YearDays(2023)[:30]
	var spans []Span
	for i, d := range days {
		switch {
		case i < 19:
			spans = append(spans, Span{Start: d + 9*3600, End: d + 17*3600})
		case i == 19:
			spans = append(spans, Span{Start: d + 9*3600, End: d + 16*3600})
		default:
			spans = append(spans, Span{})
		}
	}
	return spans
}

func TestTotalHours(t *testing.T) {
	assert.Equal(t, 159.0, TotalHours(thirtyDayFixture()))
	assert.Equal(t, 0.0, TotalHours(nil))
}

func TestTotalHoursFractional(t *testing.T) {
	day := YearDays(2023)[0]
	spans := []Span{{Start: day + 9*3600, End: day + 16*3600 + 1800}}
	assert.Equal(t, 7.5, TotalHours(spans))
}

func TestTotalHoursSkipsUnsetEndpoints(t *testing.T) {
	spans := []Span{
		{Start: 1000, End: 1000 + 9*3600},
		{Start: 2000}, // never clocked out
		{End: 3000},   // never clocked in
		{},            // day off
	}
	assert.Equal(t, 9.0, TotalHours(spans))
}

func TestShiftSpanLiftsOvernightEnd(t *testing.T) {
	day := YearDays(2023)[0]

	// 22:00 through midnight reads as two hours, not minus twenty-two.
	overnight := ShiftSpan(day+22*3600, day)
	got, err := TotalHoursChecked([]Span{overnight})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	// A forward span passes through untouched.
	assert.Equal(t, Span{Start: day + 9*3600, End: day + 17*3600}, ShiftSpan(day+9*3600, day+17*3600))

	// Unset endpoints keep the "no time set" sentinel.
	assert.Equal(t, Span{Start: day + 9*3600}, ShiftSpan(day+9*3600, 0))
}

func TestTotalHoursChecked(t *testing.T) {
	got, err := TotalHoursChecked(thirtyDayFixture())
	require.NoError(t, err)
	assert.Equal(t, 159.0, got)

	_, err = TotalHoursChecked([]Span{{Start: 5000, End: 1000}})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTotalMonthly(t *testing.T) {
	day := YearDays(2023)[0]
	eightHours := Span{Start: day + 8*3600, End: day + 16*3600}

	assert.Equal(t, "8h", TotalMonthly([]Span{eightHours}, 0, 0))
	assert.Equal(t, "8h 30min", TotalMonthly([]Span{{Start: day, End: day + 8*3600 + 1800}}, 0, 0))
	assert.Equal(t, "0h", TotalMonthly(nil, 0, 0))
}

func TestTotalMonthlyAbsenceCredit(t *testing.T) {
	day := YearDays(2023)[0]
	spans := []Span{{Start: day + 9*3600, End: day + 17*3600}}

	// Two vacation days and one sick day credit a flat eight hours each.
	assert.Equal(t, "32h", TotalMonthly(spans, 2, 1))
	assert.Equal(t, "16h", TotalMonthly(nil, 2, 0))
}
