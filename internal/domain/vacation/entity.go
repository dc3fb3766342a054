package vacation

import "time"

type Status string

const (
	StatusPendente  Status = "PENDENTE"
	StatusAprovada  Status = "APROVADA"
	StatusRejeitada Status = "REJEITADA"
	StatusCancelada Status = "CANCELADA"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendente, StatusAprovada, StatusRejeitada, StatusCancelada:
		return true
	}
	return false
}

type Vacation struct {
	ID            string
	EmployeeUID   string
	EmployeeName  string
	EmployeeEmail string
	ManagerUID    string
	StartDate     time.Time
	EndDate       time.Time
	Days          int
	Reason        string
	Status        Status
	DecisionNotes *string
	DecidedBy     *string
	DecidedAt     *time.Time
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PeriodDays counts calendar days in the period, both ends inclusive.
func PeriodDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// OverlapsPeriod reports whether v intersects [start, end]. Rejected and
// cancelled requests never count.
func (v Vacation) OverlapsPeriod(start, end time.Time) bool {
	if v.Status == StatusRejeitada || v.Status == StatusCancelada {
		return false
	}
	return !start.After(v.EndDate) && !v.StartDate.After(end)
}
