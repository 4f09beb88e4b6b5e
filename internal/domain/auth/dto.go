package auth

import "github.com/attendly/hr-console-go/internal/pkg/validator"

// VerifyResult classifies submitted profile details against the stored
// profile for the same HR ID.
type VerifyResult string

const (
	VerifyMatch    VerifyResult = "match"
	VerifyMismatch VerifyResult = "mismatch"
	VerifyNew      VerifyResult = "new"
)

// ProfileDetailsRequest carries the full set of profile fields. Verify,
// login, and register all take the same shape.
type ProfileDetailsRequest struct {
	AdminName        string `json:"admin_name"`
	OrganizationName string `json:"organization_name"`
	HRID             string `json:"hr_id"`
}

func (r *ProfileDetailsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AdminName) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_name",
			Message: "admin_name is required",
		})
	}
	if len(r.AdminName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_name",
			Message: "admin_name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.OrganizationName) {
		errs = append(errs, validator.ValidationError{
			Field:   "organization_name",
			Message: "organization_name is required",
		})
	}
	if len(r.OrganizationName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "organization_name",
			Message: "organization_name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.HRID) {
		errs = append(errs, validator.ValidationError{
			Field:   "hr_id",
			Message: "hr_id is required",
		})
	} else if !validator.IsValidHRID(r.HRID) {
		errs = append(errs, validator.ValidationError{
			Field:   "hr_id",
			Message: "hr_id may only contain letters, numbers, dots, and hyphens",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VerifyResponse struct {
	Status VerifyResult `json:"status"`
}

type ProfileResponse struct {
	HRID             string `json:"hr_id"`
	AdminName        string `json:"admin_name"`
	OrganizationName string `json:"organization_name"`
	CreatedAt        string `json:"created_at,omitempty"`
}

type SessionResponse struct {
	Token     string          `json:"token"`
	ExpiresAt int64           `json:"expires_at"`
	Profile   ProfileResponse `json:"profile"`
}
