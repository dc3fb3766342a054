package document

import (
	"io"

	"github.com/casarosa-rh/hr-backend-go/internal/pkg/validator"
)

type UploadRequest struct {
	EmployeeUID string
	Name        string
	Category    string
	SizeBytes   int64
	Content     io.Reader
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_uid",
			Message: "employee_uid is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeUID string
	Category    string
}
