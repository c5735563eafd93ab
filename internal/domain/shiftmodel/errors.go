package shiftmodel

import "errors"

var ErrShiftModelNotFound = errors.New("shift model not found")
