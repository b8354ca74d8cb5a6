package validator

import (
	"regexp"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var (
	languageCodeRegex = regexp.MustCompile(`^[a-z]{2}$`)
	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	countryCodeRegex  = regexp.MustCompile(`^[A-Z]{2,3}$`)
)

// LanguageCode validates a lowercase ISO 639-1 code known to the CLDR tables.
func LanguageCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !languageCodeRegex.MatchString(value) {
				return false
			}
			_, err := language.ParseBase(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid ISO 639-1 language code",
			TranslationKey: "validation.language_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CurrencyCode validates an uppercase ISO 4217 alphabetic code.
func CurrencyCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !currencyCodeRegex.MatchString(value) {
				return false
			}
			_, err := currency.ParseISO(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid ISO 4217 currency code",
			TranslationKey: "validation.currency_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CountryCode validates an uppercase ISO 3166-1 alpha-2 or alpha-3 code of an
// actual country. Group and private-use region codes are rejected.
func CountryCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !countryCodeRegex.MatchString(value) {
				return false
			}
			region, err := language.ParseRegion(value)
			return err == nil && region.IsCountry()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid ISO 3166-1 country code",
			TranslationKey: "validation.country_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
