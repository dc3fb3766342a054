package goal

import "errors"

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrGoalNotOpen  = errors.New("goal is not active")
)
