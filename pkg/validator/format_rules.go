package validator

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	// Decimal degrees as plain numbers; exponents and surrounding spaces are rejected.
	latitudeRegex  = regexp.MustCompile(`^[+-]?(90(\.0+)?|[1-8]?\d(\.\d+)?)$`)
	longitudeRegex = regexp.MustCompile(`^[+-]?(180(\.0+)?|1[0-7]\d(\.\d+)?|\d{1,2}(\.\d+)?)$`)

	isoDateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
)

// ValidURL validates that a string is an absolute URL with scheme and host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Latitude validates a decimal degree string in [-90, 90], e.g. "50.770774".
func Latitude(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return latitudeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid latitude coordinate (e.g., 50.770774)",
			TranslationKey: "validation.latitude",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Longitude validates a decimal degree string in [-180, 180], e.g. "-126.104965".
func Longitude(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return longitudeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid longitude coordinate (e.g., -126.104965)",
			TranslationKey: "validation.longitude",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ISODate validates a calendar date in YYYY-MM-DD form.
func ISODate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !isoDateRegex.MatchString(value) {
				return false
			}
			_, err := time.Parse(time.DateOnly, value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be in YYYY-MM-DD format",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
