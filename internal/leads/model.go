package leads

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Lead represents a validated submission on its way to dispatch. Phone keeps
// the digits as originally typed so the owner sees the caller's formatting;
// normalization decides validity only.
type Lead struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	Email       string    `json:"email,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SubmitRequest represents the request body for a form submission
type SubmitRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	City  string `json:"city"`
	Email string `json:"email,omitempty"`
}

// Validate checks the submission against the form contract: name, phone and
// city are required, phone must normalize to an Israeli mobile number, and
// email (when supplied) must be a plausible address.
func (r *SubmitRequest) Validate() *ValidationError {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Phone) == "" || strings.TrimSpace(r.City) == "" {
		return NewValidationError(KindMissingField, "name, phone and city are required")
	}
	if _, ok := NormalizePhone(r.Phone); !ok {
		return NewValidationError(KindInvalidPhone, "phone must be 10 digits starting with 05")
	}
	if r.Email != "" {
		if err := validate.Var(r.Email, "email"); err != nil {
			return NewValidationError(KindInvalidEmail, "email address is not valid")
		}
	}
	return nil
}

// SubmitResult is the outcome reported to both endpoint adapters.
type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
