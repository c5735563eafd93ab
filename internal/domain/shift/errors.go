package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrShiftExists   = errors.New("employee already has a shift on this day")
)
