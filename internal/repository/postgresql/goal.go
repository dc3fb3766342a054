package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/goal"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/database"
)

type goalRepositoryImpl struct {
	db *database.DB
}

func NewGoalRepository(db *database.DB) goal.Repository {
	return &goalRepositoryImpl{db: db}
}

const goalColumns = `id, employee_uid, title, description, progress, status, due_date, created_by, created_at, updated_at`

func scanGoal(row pgx.Row) (goal.Goal, error) {
	var g goal.Goal
	err := row.Scan(
		&g.ID,
		&g.EmployeeUID,
		&g.Title,
		&g.Description,
		&g.Progress,
		&g.Status,
		&g.DueDate,
		&g.CreatedBy,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	return g, err
}

func (r *goalRepositoryImpl) List(ctx context.Context, filter goal.Filter) ([]goal.Goal, error) {
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

	query := `SELECT ` + goalColumns + ` FROM goals`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []goal.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *goalRepositoryImpl) GetByID(ctx context.Context, id string) (goal.Goal, error) {
	q := GetQuerier(ctx, r.db)

	g, err := scanGoal(q.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal.Goal{}, goal.ErrGoalNotFound
		}
		return goal.Goal{}, err
	}
	return g, nil
}

func (r *goalRepositoryImpl) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO goals (employee_uid, title, description, progress, status, due_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + goalColumns

	created, err := scanGoal(q.QueryRow(ctx, query,
		g.EmployeeUID,
		g.Title,
		g.Description,
		g.Progress,
		g.Status,
		g.DueDate,
		g.CreatedBy,
	))
	if err != nil {
		return goal.Goal{}, err
	}
	return created, nil
}

func (r *goalRepositoryImpl) SetProgress(ctx context.Context, id string, progress int, status goal.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE goals SET progress = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		progress, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return goal.ErrGoalNotFound
	}
	return nil
}
