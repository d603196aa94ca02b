package validator

import "errors"

var (
	// ErrValidationFailed is the sentinel every Errors value matches with errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidRule is returned when a rule is built with malformed parameters.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnknownRule is returned when a rule name does not map to a Kind.
	ErrUnknownRule = errors.New("unknown rule")
)
