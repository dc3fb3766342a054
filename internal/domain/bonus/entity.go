package bonus

import "time"

type Status string

const (
	StatusPendente  Status = "PENDENTE"
	StatusAprovado  Status = "APROVADO"
	StatusRejeitado Status = "REJEITADO"
)

type Bonus struct {
	ID            string
	EmployeeUID   string
	Amount        float64
	Reason        string
	Status        Status
	AwardedBy     string
	DecisionNotes *string
	DecidedBy     *string
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
