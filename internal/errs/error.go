package errs

import (
	"errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidDate         = errors.New("invalid date")
	ErrMissingReference    = errors.New("missing reference")
	ErrReaderSuspended     = errors.New("reader is suspended")
	ErrMaterialUnavailable = errors.New("material is unavailable")
	ErrIllegalTransition   = errors.New("illegal state transition")
	ErrLoanLimit           = errors.New("reader reached the active loan limit")
)
