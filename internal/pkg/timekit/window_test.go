package timekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	now := int64(1_700_000_000)
	past := Window{Start: now - 20*daySeconds, End: now - 10*daySeconds}
	current := Window{Start: now - 2*daySeconds, End: now + 3*daySeconds}
	future := Window{Start: now + 10*daySeconds, End: now + 15*daySeconds}

	c, err := Classify([]Window{future, past, current}, now)
	require.NoError(t, err)
	assert.Equal(t, []Window{past}, c.Past)
	assert.Equal(t, []Window{future}, c.Future)
	require.NotNil(t, c.Current)
	assert.Equal(t, current, *c.Current)
}

// A window starting or ending exactly at now is current: the interval is
// closed on both ends, so every window lands in exactly one partition.
func TestClassifyBoundaries(t *testing.T) {
	now := int64(1_700_000_000)

	startsNow := Window{Start: now, End: now + daySeconds}
	c, err := Classify([]Window{startsNow}, now)
	require.NoError(t, err)
	require.NotNil(t, c.Current)
	assert.Equal(t, startsNow, *c.Current)

	endsNow := Window{Start: now - daySeconds, End: now}
	c, err = Classify([]Window{endsNow}, now)
	require.NoError(t, err)
	require.NotNil(t, c.Current)
	assert.Equal(t, endsNow, *c.Current)

	pointWindow := Window{Start: now, End: now}
	c, err = Classify([]Window{pointWindow}, now)
	require.NoError(t, err)
	require.NotNil(t, c.Current)
}

func TestClassifyPartitionsExhaustively(t *testing.T) {
	now := int64(1_700_000_000)
	windows := []Window{
		{Start: now - 30*daySeconds, End: now - 25*daySeconds},
		{Start: now - 5*daySeconds, End: now - 1},
		{Start: now - 1, End: now + 1},
		{Start: now + 1, End: now + daySeconds},
		{Start: now + 40*daySeconds, End: now + 45*daySeconds},
	}
	c, err := Classify(windows, now)
	require.NoError(t, err)
	total := len(c.Past) + len(c.Future)
	if c.Current != nil {
		total++
	}
	assert.Equal(t, len(windows), total, "no window may be lost or duplicated")
}

func TestClassifyInvalidRange(t *testing.T) {
	_, err := Classify([]Window{{Start: 100, End: 50}}, 200)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestWindowDays(t *testing.T) {
	w := Window{Start: 0, End: 14 * daySeconds}
	days, err := w.Days()
	require.NoError(t, err)
	assert.Equal(t, 14, days)

	// Partial days truncate.
	w = Window{Start: 0, End: 14*daySeconds + 7200}
	days, err = w.Days()
	require.NoError(t, err)
	assert.Equal(t, 14, days)

	_, err = Window{Start: daySeconds, End: 0}.Days()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDatesInWindows(t *testing.T) {
	days := YearDays(2023)
	vacation := Window{Start: days[10], End: days[14]}
	sick := Window{Start: days[13], End: days[16]} // overlaps the vacation

	got := DatesInWindows([]Window{sick, vacation}, days)
	assert.Equal(t, days[10:17], got, "deduplicated, ascending")

	for _, d := range got {
		in := (d >= vacation.Start && d <= vacation.End) || (d >= sick.Start && d <= sick.End)
		assert.True(t, in, "date %d outside every window", d)
	}
}

func TestDatesInWindowsNoMatch(t *testing.T) {
	days := MonthDays(timeDate(2023, 3))
	w := Window{Start: days[len(days)-1] + daySeconds, End: days[len(days)-1] + 10*daySeconds}
	assert.Empty(t, DatesInWindows([]Window{w}, days))
	assert.Empty(t, DatesInWindows(nil, days))
}
