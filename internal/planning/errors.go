package planning

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid status")
	ErrItemNotFound  = errors.New("roadmap item not found")
)

// InvalidInputError describes a malformed field on the assessment input.
type InvalidInputError struct {
	FindingID string
	Field     string
	Value     string
	Reason    string
}

func (e *InvalidInputError) Error() string {
	if e.FindingID != "" {
		return fmt.Sprintf("invalid input: finding %s: %s %q: %s", e.FindingID, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets callers match any InvalidInputError with errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
