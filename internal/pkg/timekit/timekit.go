// Package timekit holds the shared time accounting logic for rosters:
// display formatting of shift timestamps, absence window classification,
// worked-hours aggregation and calendar-day generation.
//
// Every function in this package speaks epoch-seconds. Absence windows are
// stored as epoch-milliseconds at rest; the postgresql repositories convert
// them at the scan/insert boundary so no caller ever mixes units.
package timekit

import (
	"errors"
	"time"
)

// Location is the timezone used for all day-boundary arithmetic and display
// formatting. Defaults to the host timezone; set it once at startup from
// config before serving requests.
var Location = time.Local

// ErrInvalidRange reports a window or span whose end precedes its start.
var ErrInvalidRange = errors.New("end precedes start")

func local(ts int64) time.Time {
	return time.Unix(ts, 0).In(Location)
}
