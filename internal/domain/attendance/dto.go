package attendance

import (
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeUID string `json:"employee_uid"`
	Timestamp   string `json:"timestamp"`
	Notes       string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_uid",
			Message: "employee_uid is required",
		})
	}
	if _, ok := validator.IsValidTimestamp(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an RFC 3339 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeUID string `json:"employee_uid"`
	Timestamp   string `json:"timestamp"`
	Notes       string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_uid",
			Message: "employee_uid is required",
		})
	}
	if _, ok := validator.IsValidTimestamp(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an RFC 3339 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeUID string
	DateFrom    *time.Time
	DateTo      *time.Time
}
