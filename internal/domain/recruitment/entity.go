package recruitment

import "time"

type OpeningStatus string

const (
	OpeningAberta  OpeningStatus = "ABERTA"
	OpeningFechada OpeningStatus = "FECHADA"
)

type Stage string

const (
	StageTriagem    Stage = "TRIAGEM"
	StageEntrevista Stage = "ENTREVISTA"
	StageProposta   Stage = "PROPOSTA"
	StageContratado Stage = "CONTRATADO"
	StageReprovado  Stage = "REPROVADO"
)

func (s Stage) Valid() bool {
	switch s {
	case StageTriagem, StageEntrevista, StageProposta, StageContratado, StageReprovado:
		return true
	}
	return false
}

// validStageTransitions defines the candidate pipeline. REPROVADO is
// reachable from every non-terminal stage; CONTRATADO only from PROPOSTA.
var validStageTransitions = map[Stage][]Stage{
	StageTriagem:    {StageEntrevista, StageReprovado},
	StageEntrevista: {StageProposta, StageReprovado},
	StageProposta:   {StageContratado, StageReprovado},
	StageContratado: {},
	StageReprovado:  {},
}

func (s Stage) CanAdvanceTo(next Stage) bool {
	for _, allowed := range validStageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Stage) Terminal() bool {
	return len(validStageTransitions[s]) == 0
}

type Opening struct {
	ID          string
	Title       string
	CostCenter  string
	Description string
	Status      OpeningStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Candidate struct {
	ID        string
	OpeningID string
	Name      string
	Email     string
	Phone     string
	Stage     Stage
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
