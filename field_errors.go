package ocpi

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// FieldErrors maps wire field paths to their violation messages.
// It is based on url.Values to reuse its string slice handling and is the
// data payload of a 2001 response.
type FieldErrors url.Values

// NewFieldErrors collects the messages of a validation error. It returns nil
// when err carries no validation errors.
func NewFieldErrors(err error) FieldErrors {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return nil
	}
	fe := make(FieldErrors, len(verrs))
	for _, e := range verrs {
		fe.Add(e.Field, e.Message)
	}
	return fe
}

// Error implements the error interface with fields in sorted order.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "invalid or missing parameters"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return "invalid or missing parameters: " + strings.Join(parts, ", ")
}

// Add adds an error message for a field.
func (e FieldErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e FieldErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}
