package goal

import "time"

type Status string

const (
	StatusAtiva     Status = "ATIVA"
	StatusConcluida Status = "CONCLUIDA"
	StatusCancelada Status = "CANCELADA"
)

// Goal is one performance goal. Progress is a percentage clamped to
// [0, 100]; reaching 100 marks the goal CONCLUIDA.
type Goal struct {
	ID          string
	EmployeeUID string
	Title       string
	Description string
	Progress    int
	Status      Status
	DueDate     *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClampProgress keeps a progress value inside [0, 100].
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
