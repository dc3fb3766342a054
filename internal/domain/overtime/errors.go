package overtime

import (
	"errors"
	"strings"
)

var (
	ErrRequestNotFound       = errors.New("overtime request not found")
	ErrInvalidInterval       = errors.New("end must be after start")
	ErrNoNetHours            = errors.New("net hours must be greater than zero")
	ErrExclusiveDifferential = errors.New("extra50 and extra100 are mutually exclusive")
	ErrNotPending            = errors.New("overtime request is not pending management decision")
	ErrNotApproved           = errors.New("overtime request is not approved")
	ErrNotExecuted           = errors.New("overtime request is not executed")
	ErrDecisionNotesRequired = errors.New("decision notes are required")
	ErrInvalidReduction      = errors.New("reduction factor must be between 0 and 1")
)

// ConfirmationRequiredError carries the soft warnings that block a create
// until the caller retries with explicit confirmation. It is not fatal.
type ConfirmationRequiredError struct {
	Warnings []string
}

func (e *ConfirmationRequiredError) Error() string {
	return "confirmation required: " + strings.Join(e.Warnings, "; ")
}
