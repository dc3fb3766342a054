package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/database"
)

// overtimeRepositoryImpl persists requests in a single table; the hours
// snapshot, attachments and execution record live in jsonb columns so
// the row mirrors the domain aggregate one to one.
type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `id, employee_uid, employee_email, employee_name, manager_uid, cost_center,
		date, starts_at, ends_at, break_minutes, extra50, extra100, night, reason, attachments,
		status, decision_notes, decided_by, decided_at, hours, execution,
		payroll_month, payroll_sent_at, created_by, created_by_role, created_at, updated_at`

func scanOvertime(row pgx.Row) (overtime.Request, error) {
	var (
		req           overtime.Request
		attachmentsJS []byte
		hoursJS       []byte
		executionJS   []byte
	)

	err := row.Scan(
		&req.ID,
		&req.EmployeeUID,
		&req.EmployeeEmail,
		&req.EmployeeName,
		&req.ManagerUID,
		&req.CostCenter,
		&req.Date,
		&req.StartsAt,
		&req.EndsAt,
		&req.BreakMinutes,
		&req.Extra50,
		&req.Extra100,
		&req.Night,
		&req.Reason,
		&attachmentsJS,
		&req.Status,
		&req.DecisionNotes,
		&req.DecidedBy,
		&req.DecidedAt,
		&hoursJS,
		&executionJS,
		&req.PayrollMonth,
		&req.PayrollSentAt,
		&req.CreatedBy,
		&req.CreatedByRole,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return overtime.Request{}, err
	}

	if len(attachmentsJS) > 0 {
		if err := json.Unmarshal(attachmentsJS, &req.Attachments); err != nil {
			return overtime.Request{}, fmt.Errorf("decode attachments: %w", err)
		}
	}
	if len(hoursJS) > 0 {
		if err := json.Unmarshal(hoursJS, &req.Hours); err != nil {
			return overtime.Request{}, fmt.Errorf("decode hours: %w", err)
		}
	}
	if len(executionJS) > 0 {
		var execution overtime.Execution
		if err := json.Unmarshal(executionJS, &execution); err != nil {
			return overtime.Request{}, fmt.Errorf("decode execution: %w", err)
		}
		req.Execution = &execution
	}

	return req, nil
}

func (r *overtimeRepositoryImpl) ListAll(ctx context.Context) ([]overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests ORDER BY date DESC, created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []overtime.Request
	for rows.Next() {
		req, err := scanOvertime(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests WHERE id = $1`

	req, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Request{}, overtime.ErrRequestNotFound
		}
		return overtime.Request{}, err
	}
	return req, nil
}

func (r *overtimeRepositoryImpl) Create(ctx context.Context, req overtime.Request) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	attachmentsJS, err := json.Marshal(req.Attachments)
	if err != nil {
		return overtime.Request{}, fmt.Errorf("encode attachments: %w", err)
	}
	hoursJS, err := json.Marshal(req.Hours)
	if err != nil {
		return overtime.Request{}, fmt.Errorf("encode hours: %w", err)
	}

	query := `
		INSERT INTO overtime_requests (
			employee_uid, employee_email, employee_name, manager_uid, cost_center,
			date, starts_at, ends_at, break_minutes, extra50, extra100, night,
			reason, attachments, status, hours, created_by, created_by_role
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + overtimeColumns

	created, err := scanOvertime(q.QueryRow(ctx, query,
		req.EmployeeUID,
		req.EmployeeEmail,
		req.EmployeeName,
		req.ManagerUID,
		req.CostCenter,
		req.Date,
		req.StartsAt,
		req.EndsAt,
		req.BreakMinutes,
		req.Extra50,
		req.Extra100,
		req.Night,
		req.Reason,
		attachmentsJS,
		req.Status,
		hoursJS,
		req.CreatedBy,
		req.CreatedByRole,
	))
	if err != nil {
		return overtime.Request{}, err
	}
	return created, nil
}

func (r *overtimeRepositoryImpl) UpdateByID(ctx context.Context, id string, fields overtime.UpdateFields) error {
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
	if fields.StartsAt != nil {
		add("starts_at", *fields.StartsAt)
	}
	if fields.EndsAt != nil {
		add("ends_at", *fields.EndsAt)
	}
	if fields.BreakMinutes != nil {
		add("break_minutes", *fields.BreakMinutes)
	}
	if fields.Hours != nil {
		hoursJS, err := json.Marshal(*fields.Hours)
		if err != nil {
			return fmt.Errorf("encode hours: %w", err)
		}
		add("hours", hoursJS)
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
	if fields.Execution != nil {
		executionJS, err := json.Marshal(*fields.Execution)
		if err != nil {
			return fmt.Errorf("encode execution: %w", err)
		}
		add("execution", executionJS)
	}
	if fields.AcknowledgedAt != nil {
		// The acknowledgement lives inside the execution jsonb.
		sets = append(sets, fmt.Sprintf(
			"execution = jsonb_set(COALESCE(execution, '{}'::jsonb), '{acknowledged_at}', to_jsonb($%d::timestamptz))", arg))
		args = append(args, *fields.AcknowledgedAt)
		arg++
	}
	if fields.PayrollMonth != nil {
		add("payroll_month", *fields.PayrollMonth)
	}
	if fields.PayrollSentAt != nil {
		add("payroll_sent_at", *fields.PayrollSentAt)
	}

	query := fmt.Sprintf("UPDATE overtime_requests SET %s WHERE id = $%d", strings.Join(sets, ", "), arg)
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRequestNotFound
	}
	return nil
}
