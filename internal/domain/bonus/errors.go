package bonus

import "errors"

var (
	ErrBonusNotFound = errors.New("bonus not found")
	ErrNotPending    = errors.New("bonus is not pending")
)
