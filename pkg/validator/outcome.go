package validator

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Errors maps a field name to its error messages in rule evaluation order.
// It's based on url.Values to leverage built-in string slice handling.
// A field absent from the map has no errors.
type Errors map[string][]string

// Add appends a message for field.
func (e Errors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field, or "" when there is none.
func (e Errors) Get(field string) string {
	return url.Values(e).Get(field)
}

// All returns every message for field in evaluation order.
func (e Errors) All(field string) []string {
	return e[field]
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the names of fields with errors, sorted.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field, messages := range e {
		if len(messages) > 0 {
			fields = append(fields, field)
		}
	}
	slices.Sort(fields)
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Error implements the error interface.
func (e Errors) Error() string {
	if len(e) == 0 {
		return ErrValidationFailed.Error()
	}

	var parts []string
	for _, field := range e.Fields() {
		for _, msg := range e[field] {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed as a match so callers can use errors.Is.
func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Outcome is the result of one validation run.
type Outcome struct {
	// Passed is true iff no binding failed.
	Passed bool
	// Errors holds the messages of failed bindings; empty when Passed.
	Errors Errors
}

// Err returns nil when the outcome passed and the Errors otherwise.
func (o Outcome) Err() error {
	if o.Passed {
		return nil
	}
	return o.Errors
}

// ExtractErrors extracts Errors from an error chain.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verrs Errors
	return errors.As(err, &verrs)
}
