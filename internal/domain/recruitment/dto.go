package recruitment

import (
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/validator"
)

type CreateOpeningRequest struct {
	Title       string `json:"title"`
	CostCenter  string `json:"cost_center"`
	Description string `json:"description,omitempty"`
}

func (r *CreateOpeningRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.CostCenter) {
		errs = append(errs, validator.ValidationError{
			Field:   "cost_center",
			Message: "cost_center is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddCandidateRequest struct {
	OpeningID string `json:"opening_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (r *AddCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OpeningID) {
		errs = append(errs, validator.ValidationError{
			Field:   "opening_id",
			Message: "opening_id is required",
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
			Message: "email must be a valid address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdvanceCandidateRequest struct {
	CandidateID string `json:"candidate_id"`
	Stage       string `json:"stage"`
	Notes       string `json:"notes,omitempty"`
}

func (r *AdvanceCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_id",
			Message: "candidate_id is required",
		})
	}
	if !Stage(r.Stage).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "stage",
			Message: "stage is not a known pipeline stage",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
