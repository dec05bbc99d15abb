package leads

import "fmt"

// ValidationKind classifies why a submission was rejected.
type ValidationKind string

const (
	// KindMissingField indicates name, phone or city was empty
	KindMissingField ValidationKind = "missing_field"

	// KindInvalidPhone indicates the phone failed the Israeli mobile format check
	KindInvalidPhone ValidationKind = "invalid_phone"

	// KindInvalidEmail indicates the optional email is not a valid address
	KindInvalidEmail ValidationKind = "invalid_email"

	// KindMalformedRequest indicates the request body was not parseable
	KindMalformedRequest ValidationKind = "malformed_request"
)

// ValidationError is returned when a submission fails validation. It is a
// client-side condition and is never retried.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("leads: validation failed (%s): %s", e.Kind, e.Message)
}

// NewValidationError creates a ValidationError with the given kind and message.
func NewValidationError(kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}
