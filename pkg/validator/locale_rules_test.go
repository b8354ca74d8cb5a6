package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

func TestLanguageCode(t *testing.T) {
	for _, v := range []string{"en", "de", "nl", "fr"} {
		assert.True(t, validator.LanguageCode("language", v).Check(), v)
	}
	for _, v := range []string{"", "EN", "eng", "e1", "en-US", "e"} {
		assert.False(t, validator.LanguageCode("language", v).Check(), v)
	}

	rule := validator.LanguageCode("language", "")
	assert.Equal(t, "must be a valid ISO 639-1 language code", rule.Error.Message)
	assert.Equal(t, "validation.language_code", rule.Error.TranslationKey)
}

func TestCurrencyCode(t *testing.T) {
	for _, v := range []string{"EUR", "USD", "GBP", "CHF", "NOK"} {
		assert.True(t, validator.CurrencyCode("currency", v).Check(), v)
	}
	for _, v := range []string{"", "eur", "EU", "EURO", "ABC", "€"} {
		assert.False(t, validator.CurrencyCode("currency", v).Check(), v)
	}

	rule := validator.CurrencyCode("currency", "")
	assert.Equal(t, "must be a valid ISO 4217 currency code", rule.Error.Message)
	assert.Equal(t, "validation.currency_code", rule.Error.TranslationKey)
}

func TestCountryCode(t *testing.T) {
	for _, v := range []string{"NL", "DE", "NLD", "DEU", "US", "USA"} {
		assert.True(t, validator.CountryCode("country", v).Check(), v)
	}
	for _, v := range []string{"", "nl", "N", "NLDX", "528", "N1"} {
		assert.False(t, validator.CountryCode("country", v).Check(), v)
	}

	rule := validator.CountryCode("country", "")
	assert.Equal(t, "must be a valid ISO 3166-1 country code", rule.Error.Message)
	assert.Equal(t, "validation.country_code", rule.Error.TranslationKey)
}
