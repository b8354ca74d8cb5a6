package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single field violation with translation support.
// Field is the wire name of the offending value; nested values use
// dotted and indexed paths such as "evses[0].connectors[1].tariff_ids[2]".
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the distinct field paths in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Map groups messages by field path.
func (ve ValidationErrors) Map() map[string][]string {
	m := make(map[string][]string, len(ve))
	for _, err := range ve {
		m[err.Field] = append(m[err.Field], err.Message)
	}
	return m
}

// WithPrefix returns a copy with every field path re-rooted under prefix.
// Translation values are copied so the "field" entry tracks the new path.
func (ve ValidationErrors) WithPrefix(prefix string) ValidationErrors {
	if prefix == "" {
		return ve
	}

	out := make(ValidationErrors, 0, len(ve))
	for _, err := range ve {
		path := joinPath(prefix, err.Field)
		values := make(map[string]any, len(err.TranslationValues))
		for k, v := range err.TranslationValues {
			values[k] = v
		}
		if _, ok := values["field"]; ok {
			values["field"] = path
		}
		out = append(out, ValidationError{
			Field:             path,
			Message:           rewriteFieldInMessage(err.Message, err.Field, path),
			TranslationKey:    err.TranslationKey,
			TranslationValues: values,
		})
	}
	return out
}

func joinPath(prefix, field string) string {
	switch {
	case field == "":
		return prefix
	case strings.HasPrefix(field, "["):
		return prefix + field
	default:
		return prefix + "." + field
	}
}

// OCPI format messages start with the field name; keep them in sync with the path.
func rewriteFieldInMessage(msg, oldField, newField string) string {
	if oldField != "" && strings.HasPrefix(msg, oldField+" ") {
		return newField + msg[len(oldField):]
	}
	return msg
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
