package recruitment

import "context"

type Repository interface {
	ListOpenings(ctx context.Context) ([]Opening, error)
	GetOpeningByID(ctx context.Context, id string) (Opening, error)
	CreateOpening(ctx context.Context, opening Opening) (Opening, error)
	SetOpeningStatus(ctx context.Context, id string, status OpeningStatus) error

	ListCandidates(ctx context.Context, openingID string) ([]Candidate, error)
	GetCandidateByID(ctx context.Context, id string) (Candidate, error)
	CreateCandidate(ctx context.Context, candidate Candidate) (Candidate, error)
	SetCandidateStage(ctx context.Context, id string, stage Stage, notes string) error
}
