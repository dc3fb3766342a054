package overtime

import (
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// Status is the lifecycle stage of an overtime request. Transitions are
// monotonic: PENDENTE_GESTAO -> {APROVADA, REJEITADA}, APROVADA ->
// EXECUTADA, EXECUTADA -> EM_FOLHA. REJEITADA and EM_FOLHA are terminal.
type Status string

const (
	StatusPendenteGestao Status = "PENDENTE_GESTAO"
	StatusAprovada       Status = "APROVADA"
	StatusRejeitada      Status = "REJEITADA"
	StatusExecutada      Status = "EXECUTADA"
	StatusEmFolha        Status = "EM_FOLHA"
)

var validTransitions = map[Status][]Status{
	StatusPendenteGestao: {StatusAprovada, StatusRejeitada},
	StatusAprovada:       {StatusExecutada},
	StatusExecutada:      {StatusEmFolha},
	StatusRejeitada:      {},
	StatusEmFolha:        {},
}

func (s Status) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal step
// of the state machine.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// Attachment references an uploaded file. Only the name/url pair is
// stored, never the content.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// HoursBreakdown is the derived-hours snapshot cached on the request.
// It is recomputed whenever start/end/break/type change and is never
// edited independently of those fields.
type HoursBreakdown struct {
	Total  float64 `json:"total"`
	H50    float64 `json:"h50"`
	H100   float64 `json:"h100"`
	HNight float64 `json:"h_night"`
}

// Execution records the apportionment of an approved request. Actual
// hours are kept apart from the approved snapshot and are not reconciled
// automatically.
type Execution struct {
	ActualHours    float64      `json:"actual_hours"`
	Notes          string       `json:"notes,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	AcknowledgedAt *time.Time   `json:"acknowledged_at,omitempty"`
}

// Request is one requested/approved/executed overtime interval for one
// employee. Requests are never hard-deleted; rejection is the terminal
// status that models cancellation.
type Request struct {
	ID            string
	EmployeeUID   string
	EmployeeEmail string
	EmployeeName  string
	ManagerUID    string
	CostCenter    string
	Date          time.Time
	StartsAt      time.Time
	EndsAt        time.Time
	BreakMinutes  int
	Extra50       bool
	Extra100      bool
	Night         bool
	Reason        string
	Attachments   []Attachment

	Status        Status
	DecisionNotes *string
	DecidedBy     *string
	DecidedAt     *time.Time

	Hours     HoursBreakdown
	Execution *Execution

	PayrollMonth  *string
	PayrollSentAt *time.Time

	CreatedBy     string
	CreatedByRole user.Role
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Overlaps reports whether the request's interval intersects [start, end)
// on the same calendar date. Rejected requests never count.
func (r Request) Overlaps(date time.Time, start, end time.Time) bool {
	if r.Status == StatusRejeitada {
		return false
	}
	ry, rm, rd := r.Date.Date()
	y, m, d := date.Date()
	if ry != y || rm != m || rd != d {
		return false
	}
	return start.Before(r.EndsAt) && r.StartsAt.Before(end)
}
