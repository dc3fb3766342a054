package overtime

import (
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	EmployeeUID  string       `json:"employee_uid"`
	Date         string       `json:"date"`
	StartsAt     string       `json:"starts_at"`
	EndsAt       string       `json:"ends_at"`
	BreakMinutes int          `json:"break_minutes"`
	Extra50      bool         `json:"extra50"`
	Extra100     bool         `json:"extra100"`
	Night        bool         `json:"night"`
	Reason       string       `json:"reason"`
	Attachments  []Attachment `json:"attachments,omitempty"`

	// Confirm acknowledges soft warnings (daily-limit excess, overlap)
	// raised by a previous attempt.
	Confirm bool `json:"confirm"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_uid",
			Message: "employee_uid is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if _, ok := validator.IsValidTimestamp(r.StartsAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "starts_at",
			Message: "starts_at must be an RFC 3339 timestamp",
		})
	}
	if _, ok := validator.IsValidTimestamp(r.EndsAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "ends_at",
			Message: "ends_at must be an RFC 3339 timestamp",
		})
	}
	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	if r.Extra50 && r.Extra100 {
		return ErrExclusiveDifferential
	}

	return nil
}

// IntervalOverride optionally replaces start/end/break during a decision
// or adjustment. The hours snapshot is recomputed from it.
type IntervalOverride struct {
	StartsAt     string `json:"starts_at"`
	EndsAt       string `json:"ends_at"`
	BreakMinutes *int   `json:"break_minutes,omitempty"`
}

func (o *IntervalOverride) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidTimestamp(o.StartsAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "starts_at",
			Message: "starts_at must be an RFC 3339 timestamp",
		})
	}
	if _, ok := validator.IsValidTimestamp(o.EndsAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "ends_at",
			Message: "ends_at must be an RFC 3339 timestamp",
		})
	}
	if o.BreakMinutes != nil && *o.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequest struct {
	ID            string            `json:"id"`
	Approve       bool              `json:"approve"`
	AdjustOnly    bool              `json:"adjust_only"`
	NewInterval   *IntervalOverride `json:"new_interval,omitempty"`
	DecisionNotes string            `json:"decision_notes"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.NewInterval != nil {
		if err := r.NewInterval.Validate(); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, ve...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	if validator.IsEmpty(r.DecisionNotes) {
		return ErrDecisionNotesRequired
	}

	return nil
}

type ExecuteRequest struct {
	ID          string       `json:"id"`
	ActualHours float64      `json:"actual_hours"`
	Notes       string       `json:"notes,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

func (r *ExecuteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.ActualHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_hours",
			Message: "actual_hours must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SendToPayrollRequest struct {
	IDs   []string `json:"ids"`
	Month string   `json:"month"`
}

func (r *SendToPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "ids must not be empty",
		})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be YYYY-MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MassApproveRequest struct {
	IDs           []string `json:"ids"`
	DecisionNotes string   `json:"decision_notes"`
}

func (r *MassApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "ids must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	if validator.IsEmpty(r.DecisionNotes) {
		return ErrDecisionNotesRequired
	}

	return nil
}

type MassAdjustRequest struct {
	IDs             []string `json:"ids"`
	ReductionFactor float64  `json:"reduction_factor"`
	Reason          string   `json:"reason"`
}

func (r *MassAdjustRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "ids must not be empty",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	if !validator.IsValidPercent(r.ReductionFactor) || r.ReductionFactor >= 1 {
		return ErrInvalidReduction
	}

	return nil
}

// Filter narrows the scoped record set. All fields are optional and
// combine with AND; Search matches employee name/email, case-insensitive.
type Filter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	Statuses   []Status
	ManagerUID string
	CostCenter string
	Search     string
}

// BulkResult reports the outcome of one record inside a bulk operation.
// Bulk writes are independent; one failure never rolls back the rest.
type BulkResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RankEntry is one row of a top-N ranking.
type RankEntry struct {
	Key   string  `json:"key"`
	Hours float64 `json:"hours"`
}

// Summary carries the dashboard KPIs of a filtered listing. PendingCount
// always reflects the full role scope, not the filtered subset. TotalCost
// is omitted for COLABORADOR actors.
type Summary struct {
	PendingCount   int         `json:"pending_count"`
	TotalHours     float64     `json:"total_hours"`
	TotalCost      *float64    `json:"total_cost,omitempty"`
	TopEmployees   []RankEntry `json:"top_employees"`
	TopCostCenters []RankEntry `json:"top_cost_centers"`
}

type ListResponse struct {
	Items   []Request `json:"items"`
	Summary Summary   `json:"summary"`
}
