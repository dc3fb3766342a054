package vacation

import (
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/validator"
)

type CreateVacationRequest struct {
	EmployeeUID string `json:"employee_uid"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_uid",
			Message: "employee_uid is required",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideVacationRequest struct {
	ID            string `json:"id"`
	Approve       bool   `json:"approve"`
	DecisionNotes string `json:"decision_notes"`
}

func (r *DecideVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.DecisionNotes) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision_notes",
			Message: "decision_notes is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeUID string
	Year        int
	Statuses    []Status
}

// Balance summarizes the yearly entitlement of one employee. Taken counts
// the days of approved requests whose period starts in the year.
type Balance struct {
	EmployeeUID string `json:"employee_uid"`
	Year        int    `json:"year"`
	Entitled    int    `json:"entitled"`
	Taken       int    `json:"taken"`
	Remaining   int    `json:"remaining"`
}
