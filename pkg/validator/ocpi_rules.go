package validator

import "github.com/dmitrymomot/ocpi/pkg/ocpiformat"

// CiString validates printable ASCII (OCPI case-insensitive string).
func CiString(field, value string) Rule {
	return Format(ocpiformat.CiString, field, value)
}

// OcpiDateTime validates an OCPI DateTime such as "2015-06-29T20:39:09Z".
func OcpiDateTime(field, value string) Rule {
	return Format(ocpiformat.DateTime, field, value)
}

// TimeOfDay validates a 24-hour HH:MM time.
func TimeOfDay(field, value string) Rule {
	return Format(ocpiformat.TimeOfDay, field, value)
}

// Format adapts any ocpiformat rule. value may be of any type; non-strings fail.
// The message already contains the field name, as the format rules define it.
func Format(rule ocpiformat.FormatRule, field string, value any) Rule {
	if rule == nil {
		return Rule{
			Check: func() bool { return false },
			Error: ValidationError{
				Field:          field,
				Message:        ErrUnknownFormat.Error(),
				TranslationKey: "validation.unknown_format",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		}
	}

	return Rule{
		Check: func() bool {
			return rule.Validate(field, value).Valid
		},
		Error: ValidationError{
			Field:          field,
			Message:        rule.Message(field),
			TranslationKey: "validation." + rule.Name(),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
