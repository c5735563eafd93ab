package roster

import "errors"

var ErrMonthNotSeeded = errors.New("no calendar days seeded for this month")
