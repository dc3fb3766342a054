package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/attendance"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_uid, date, clock_in, clock_out, notes, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeUID,
		&rec.Date,
		&rec.ClockIn,
		&rec.ClockOut,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	arg := 1

	if filter.EmployeeUID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_uid = $%d", arg))
		args = append(args, filter.EmployeeUID)
		arg++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", arg))
		args = append(args, *filter.DateFrom)
		arg++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", arg))
		args = append(args, *filter.DateTo)
		arg++
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, clock_in DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) GetOpenForEmployee(ctx context.Context, employeeUID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_uid = $1 AND date = $2 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeUID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_uid, date, clock_in, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		rec.EmployeeUID,
		rec.Date,
		rec.ClockIn,
		rec.Notes,
	))
	if err != nil {
		return attendance.Record{}, err
	}
	return created, nil
}

func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time, notes string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_out = $1,
			notes = CASE WHEN $2 <> '' THEN $2 ELSE notes END,
			updated_at = NOW()
		WHERE id = $3`

	tag, err := q.Exec(ctx, query, clockOut, notes, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}
