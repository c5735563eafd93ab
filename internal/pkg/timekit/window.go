package timekit

import (
	"fmt"
	"sort"
)

const daySeconds = 24 * 60 * 60

// Window is a closed absence date range (vacation or sick leave) in
// epoch-seconds.
type Window struct {
	Start int64
	End   int64
}

// Valid reports ErrInvalidRange when the window ends before it starts.
func (w Window) Valid() error {
	if w.End < w.Start {
		return fmt.Errorf("window [%d, %d]: %w", w.Start, w.End, ErrInvalidRange)
	}
	return nil
}

// Days returns the whole days spanned by the window, truncated.
func (w Window) Days() (int, error) {
	if err := w.Valid(); err != nil {
		return 0, err
	}
	return int((w.End - w.Start) / daySeconds), nil
}

// Classification partitions a set of windows relative to one instant.
// The partitions are mutually exclusive and exhaustive: a window is
// current when Start <= now <= End (closed interval), past when it ended
// before now, future otherwise.
type Classification struct {
	Past    []Window
	Future  []Window
	Current *Window
}

// Classify partitions windows against now. Windows are assumed
// non-overlapping; if several contain now, the first one encountered is
// reported as current and the rest are filed into past/future by their
// start. Any window with End < Start aborts with ErrInvalidRange.
func Classify(windows []Window, now int64) (Classification, error) {
	var c Classification
	for _, w := range windows {
		if err := w.Valid(); err != nil {
			return Classification{}, err
		}
		switch {
		case w.End < now:
			c.Past = append(c.Past, w)
		case w.Start > now:
			c.Future = append(c.Future, w)
		case c.Current == nil:
			cur := w
			c.Current = &cur
		default:
			// Overlapping second "current" window; keep the partition
			// exhaustive by filing it on the side of its start.
			if w.Start < c.Current.Start {
				c.Past = append(c.Past, w)
			} else {
				c.Future = append(c.Future, w)
			}
		}
	}
	return c, nil
}

// DatesInWindows returns the subset of dates (calendar-day midnights,
// epoch-seconds) that fall inside any window, deduplicated and ascending.
func DatesInWindows(windows []Window, dates []int64) []int64 {
	seen := make(map[int64]struct{})
	var out []int64
	for _, d := range dates {
		if _, dup := seen[d]; dup {
			continue
		}
		for _, w := range windows {
			if d >= w.Start && d <= w.End {
				seen[d] = struct{}{}
				out = append(out, d)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
