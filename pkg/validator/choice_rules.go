package validator

import "fmt"

// Enum is satisfied by the string enum types of the OCPI modules.
type Enum interface {
	comparable
	IsValid() bool
}

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// OneOf validates an enum value through its own IsValid method.
// The zero value is rejected unless the enum lists it.
func OneOf[T Enum](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value.IsValid()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid enum value",
			TranslationKey: "validation.enum",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// OptionalOneOf accepts the zero value and otherwise behaves like OneOf.
func OptionalOneOf[T Enum](field string, value T) Rule {
	var zero T
	r := OneOf(field, value)
	r.Check = func() bool {
		return value == zero || value.IsValid()
	}
	return r
}
