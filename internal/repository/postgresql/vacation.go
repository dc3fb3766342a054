package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/vacation"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/database"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.Repository {
	return &vacationRepositoryImpl{db: db}
}

const vacationColumns = `id, employee_uid, employee_name, employee_email, manager_uid,
		start_date, end_date, days, reason, status, decision_notes, decided_by, decided_at,
		created_by, created_at, updated_at`

func scanVacation(row pgx.Row) (vacation.Vacation, error) {
	var v vacation.Vacation
	err := row.Scan(
		&v.ID,
		&v.EmployeeUID,
		&v.EmployeeName,
		&v.EmployeeEmail,
		&v.ManagerUID,
		&v.StartDate,
		&v.EndDate,
		&v.Days,
		&v.Reason,
		&v.Status,
		&v.DecisionNotes,
		&v.DecidedBy,
		&v.DecidedAt,
		&v.CreatedBy,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}

func (r *vacationRepositoryImpl) ListAll(ctx context.Context) ([]vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + ` FROM vacations ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}
	return vacations, rows.Err()
}

func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + ` FROM vacations WHERE id = $1`

	v, err := scanVacation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Vacation{}, vacation.ErrVacationNotFound
		}
		return vacation.Vacation{}, err
	}
	return v, nil
}

func (r *vacationRepositoryImpl) Create(ctx context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (employee_uid, employee_name, employee_email, manager_uid,
			start_date, end_date, days, reason, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + vacationColumns

	created, err := scanVacation(q.QueryRow(ctx, query,
		v.EmployeeUID,
		v.EmployeeName,
		v.EmployeeEmail,
		v.ManagerUID,
		v.StartDate,
		v.EndDate,
		v.Days,
		v.Reason,
		v.Status,
		v.CreatedBy,
	))
	if err != nil {
		return vacation.Vacation{}, err
	}
	return created, nil
}

func (r *vacationRepositoryImpl) UpdateByID(ctx context.Context, id string, fields vacation.UpdateFields) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if fields.Status != nil {
		add("status", *fields.Status)
	}
	if fields.DecisionNotes != nil {
		add("decision_notes", *fields.DecisionNotes)
	}
	if fields.DecidedBy != nil {
		add("decided_by", *fields.DecidedBy)
	}
	if fields.DecidedAt != nil {
		add("decided_at", *fields.DecidedAt)
	}

	query := fmt.Sprintf("UPDATE vacations SET %s WHERE id = $%d", strings.Join(sets, ", "), arg)
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrVacationNotFound
	}
	return nil
}
