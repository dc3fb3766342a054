package recruitment

import "errors"

var (
	ErrOpeningNotFound        = errors.New("job opening not found")
	ErrCandidateNotFound      = errors.New("candidate not found")
	ErrOpeningClosed          = errors.New("job opening is closed")
	ErrInvalidStageTransition = errors.New("invalid candidate stage transition")
)
