package bonus

import (
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/validator"
)

type CreateBonusRequest struct {
	EmployeeUID string  `json:"employee_uid"`
	Amount      float64 `json:"amount"`
	Reason      string  `json:"reason"`
}

func (r *CreateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_uid",
			Message: "employee_uid is required",
		})
	}
	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
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

	return nil
}

type DecideBonusRequest struct {
	ID            string `json:"id"`
	Approve       bool   `json:"approve"`
	DecisionNotes string `json:"decision_notes"`
}

func (r *DecideBonusRequest) Validate() error {
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
	Statuses    []Status
}
