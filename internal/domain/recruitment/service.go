package recruitment

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type RecruitmentService interface {
	CreateOpening(ctx context.Context, actor user.Actor, req CreateOpeningRequest) (Opening, error)
	ListOpenings(ctx context.Context, actor user.Actor) ([]Opening, error)
	CloseOpening(ctx context.Context, actor user.Actor, id string) (Opening, error)

	AddCandidate(ctx context.Context, actor user.Actor, req AddCandidateRequest) (Candidate, error)
	ListCandidates(ctx context.Context, actor user.Actor, openingID string) ([]Candidate, error)
	AdvanceCandidate(ctx context.Context, actor user.Actor, req AdvanceCandidateRequest) (Candidate, error)
}
