package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/recruitment"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/database"
)

type recruitmentRepositoryImpl struct {
	db *database.DB
}

func NewRecruitmentRepository(db *database.DB) recruitment.Repository {
	return &recruitmentRepositoryImpl{db: db}
}

const openingColumns = `id, title, cost_center, description, status, created_by, created_at, updated_at`
const candidateColumns = `id, opening_id, name, email, phone, stage, notes, created_at, updated_at`

func scanOpening(row pgx.Row) (recruitment.Opening, error) {
	var o recruitment.Opening
	err := row.Scan(
		&o.ID,
		&o.Title,
		&o.CostCenter,
		&o.Description,
		&o.Status,
		&o.CreatedBy,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func scanCandidate(row pgx.Row) (recruitment.Candidate, error) {
	var c recruitment.Candidate
	err := row.Scan(
		&c.ID,
		&c.OpeningID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Stage,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *recruitmentRepositoryImpl) ListOpenings(ctx context.Context) ([]recruitment.Opening, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+openingColumns+` FROM job_openings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var openings []recruitment.Opening
	for rows.Next() {
		o, err := scanOpening(rows)
		if err != nil {
			return nil, err
		}
		openings = append(openings, o)
	}
	return openings, rows.Err()
}

func (r *recruitmentRepositoryImpl) GetOpeningByID(ctx context.Context, id string) (recruitment.Opening, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOpening(q.QueryRow(ctx, `SELECT `+openingColumns+` FROM job_openings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.Opening{}, recruitment.ErrOpeningNotFound
		}
		return recruitment.Opening{}, err
	}
	return o, nil
}

func (r *recruitmentRepositoryImpl) CreateOpening(ctx context.Context, opening recruitment.Opening) (recruitment.Opening, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_openings (title, cost_center, description, status, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + openingColumns

	created, err := scanOpening(q.QueryRow(ctx, query,
		opening.Title,
		opening.CostCenter,
		opening.Description,
		opening.Status,
		opening.CreatedBy,
	))
	if err != nil {
		return recruitment.Opening{}, err
	}
	return created, nil
}

func (r *recruitmentRepositoryImpl) SetOpeningStatus(ctx context.Context, id string, status recruitment.OpeningStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE job_openings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrOpeningNotFound
	}
	return nil
}

func (r *recruitmentRepositoryImpl) ListCandidates(ctx context.Context, openingID string) ([]recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE opening_id = $1 ORDER BY created_at`, openingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []recruitment.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *recruitmentRepositoryImpl) GetCandidateByID(ctx context.Context, id string) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCandidate(q.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
		}
		return recruitment.Candidate{}, err
	}
	return c, nil
}

func (r *recruitmentRepositoryImpl) CreateCandidate(ctx context.Context, candidate recruitment.Candidate) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO candidates (opening_id, name, email, phone, stage, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + candidateColumns

	created, err := scanCandidate(q.QueryRow(ctx, query,
		candidate.OpeningID,
		candidate.Name,
		candidate.Email,
		candidate.Phone,
		candidate.Stage,
		candidate.Notes,
	))
	if err != nil {
		return recruitment.Candidate{}, err
	}
	return created, nil
}

func (r *recruitmentRepositoryImpl) SetCandidateStage(ctx context.Context, id string, stage recruitment.Stage, notes string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE candidates
		SET stage = $1,
			notes = CASE WHEN $2 <> '' THEN $2 ELSE notes END,
			updated_at = NOW()
		WHERE id = $3`

	tag, err := q.Exec(ctx, query, stage, notes, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrCandidateNotFound
	}
	return nil
}
