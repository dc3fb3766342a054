package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/bonus"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/database"
)

type bonusRepositoryImpl struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.Repository {
	return &bonusRepositoryImpl{db: db}
}

const bonusColumns = `id, employee_uid, amount, reason, status, awarded_by, decision_notes, decided_by, decided_at, created_at, updated_at`

func scanBonus(row pgx.Row) (bonus.Bonus, error) {
	var b bonus.Bonus
	err := row.Scan(
		&b.ID,
		&b.EmployeeUID,
		&b.Amount,
		&b.Reason,
		&b.Status,
		&b.AwardedBy,
		&b.DecisionNotes,
		&b.DecidedBy,
		&b.DecidedAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *bonusRepositoryImpl) List(ctx context.Context, filter bonus.Filter) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	arg := 1

	if filter.EmployeeUID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_uid = $%d", arg))
		args = append(args, filter.EmployeeUID)
		arg++
	}
	if len(filter.Statuses) > 0 {
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", arg))
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, statuses)
		arg++
	}

	query := `SELECT ` + bonusColumns + ` FROM bonuses`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bonuses []bonus.Bonus
	for rows.Next() {
		b, err := scanBonus(rows)
		if err != nil {
			return nil, err
		}
		bonuses = append(bonuses, b)
	}
	return bonuses, rows.Err()
}

func (r *bonusRepositoryImpl) GetByID(ctx context.Context, id string) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBonus(q.QueryRow(ctx, `SELECT `+bonusColumns+` FROM bonuses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bonus.Bonus{}, bonus.ErrBonusNotFound
		}
		return bonus.Bonus{}, err
	}
	return b, nil
}

func (r *bonusRepositoryImpl) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonuses (employee_uid, amount, reason, status, awarded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bonusColumns

	created, err := scanBonus(q.QueryRow(ctx, query,
		b.EmployeeUID,
		b.Amount,
		b.Reason,
		b.Status,
		b.AwardedBy,
	))
	if err != nil {
		return bonus.Bonus{}, err
	}
	return created, nil
}

func (r *bonusRepositoryImpl) SetDecision(ctx context.Context, id string, status bonus.Status, notes, decidedBy string, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bonuses
		SET status = $1, decision_notes = $2, decided_by = $3, decided_at = $4, updated_at = NOW()
		WHERE id = $5`

	tag, err := q.Exec(ctx, query, status, notes, decidedBy, decidedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrBonusNotFound
	}
	return nil
}
