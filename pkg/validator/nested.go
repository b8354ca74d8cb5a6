package validator

import (
	"fmt"
)

// Validatable is implemented by every DTO.
type Validatable interface {
	Validate() error
}

// When returns rule unchanged if cond holds and a passing rule otherwise.
// It expresses optional fields: validate the value only when it is present.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Rule{
		Check: func() bool { return true },
		Error: rule.Error,
	}
}

// Nested validates v and roots its field errors under field.
func Nested(field string, v Validatable) error {
	if v == nil {
		return nil
	}
	return prefixed(field, v.Validate())
}

// NestedPtr is Nested for optional objects; a nil pointer is valid.
func NestedPtr[T any, P interface {
	*T
	Validatable
}](field string, v P) error {
	if v == nil {
		return nil
	}
	return prefixed(field, v.Validate())
}

// NestedEach validates every element and roots errors under field[i].
func NestedEach[T Validatable](field string, items []T) error {
	errs := make([]error, 0, len(items))
	for i, item := range items {
		errs = append(errs, prefixed(fmt.Sprintf("%s[%d]", field, i), item.Validate()))
	}
	return Join(errs...)
}

// Join merges validation errors from several sources, preserving order.
// Nil errors are skipped. The first error that is not a validation error is
// returned unchanged since it signals a failure other than bad input.
func Join(errs ...error) error {
	var all ValidationErrors
	for _, err := range errs {
		if err == nil {
			continue
		}
		verrs := ExtractValidationErrors(err)
		if verrs == nil {
			return err
		}
		all = append(all, verrs...)
	}
	if all.IsEmpty() {
		return nil
	}
	return all
}

func prefixed(field string, err error) error {
	if err == nil {
		return nil
	}
	verrs := ExtractValidationErrors(err)
	if verrs == nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return verrs.WithPrefix(field)
}

// Deref returns the pointed-to value or the zero value for nil. Rule
// arguments are evaluated eagerly, so optional fields are read through it:
//
//	validator.When(p.InclVAT != nil, validator.NonNegative("incl_vat", validator.Deref(p.InclVAT)))
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
