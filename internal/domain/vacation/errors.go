package vacation

import "errors"

var (
	ErrVacationNotFound = errors.New("vacation request not found")
	ErrInvalidPeriod    = errors.New("invalid vacation period")
	ErrNotPending       = errors.New("vacation request is not pending")
	ErrNotCancellable   = errors.New("vacation request can no longer be cancelled")
	ErrPeriodOverlap    = errors.New("vacation period overlaps an existing request")
)
