package employee

import (
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UID           string  `json:"uid"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ManagerUID    *string `json:"manager_uid,omitempty"`
	CostCenter    string  `json:"cost_center"`
	Role          string  `json:"role"`
	MonthlySalary float64 `json:"monthly_salary"`
	AdmissionDate string  `json:"admission_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UID) {
		errs = append(errs, validator.ValidationError{
			Field:   "uid",
			Message: "uid is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}
	if !user.Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of ADM, RH, GESTOR, COLABORADOR",
		})
	}
	if !validator.IsValidMoney(r.MonthlySalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}
	if r.AdmissionDate != "" {
		if _, ok := validator.IsValidDate(r.AdmissionDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "admission_date",
				Message: "admission_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID            string   `json:"id"`
	Name          *string  `json:"name,omitempty"`
	Email         *string  `json:"email,omitempty"`
	ManagerUID    *string  `json:"manager_uid,omitempty"`
	CostCenter    *string  `json:"cost_center,omitempty"`
	Role          *string  `json:"role,omitempty"`
	MonthlySalary *float64 `json:"monthly_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}
	if r.Role != nil && !user.Role(*r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of ADM, RH, GESTOR, COLABORADOR",
		})
	}
	if r.MonthlySalary != nil && !validator.IsValidMoney(*r.MonthlySalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	UID           string  `json:"uid"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ManagerUID    *string `json:"manager_uid,omitempty"`
	CostCenter    string  `json:"cost_center"`
	Role          string  `json:"role"`
	MonthlySalary float64 `json:"monthly_salary,omitempty"`
	AdmissionDate string  `json:"admission_date"`
	Active        bool    `json:"active"`
}
