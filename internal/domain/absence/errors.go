package absence

import "errors"

var (
	ErrAbsenceNotFound     = errors.New("absence not found")
	ErrInsufficientBalance = errors.New("insufficient vacation-day balance")
)
