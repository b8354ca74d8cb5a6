package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.Required("issuer", "TheNewMotion")
		assert.True(t, rule.Check())
		assert.Equal(t, "issuer", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "issuer"}, rule.Error.TranslationValues)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, validator.Required("issuer", "").Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, validator.Required("issuer", "  \t ").Check())
	})
}

func TestMinLen(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		rule := validator.MinLen("name", "A", 1)
		assert.True(t, rule.Check())
		assert.Equal(t, "must be at least 1 characters long", rule.Error.Message)
		assert.Equal(t, "validation.min_length", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "name", "min": 1}, rule.Error.TranslationValues)
	})

	t.Run("fails below minimum", func(t *testing.T) {
		assert.False(t, validator.MinLen("name", "", 1).Check())
	})
}

func TestMaxLen(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		rule := validator.MaxLen("party_id", "TNM", 3)
		assert.True(t, rule.Check())
		assert.Equal(t, "must be at most 3 characters long", rule.Error.Message)
		assert.Equal(t, "validation.max_length", rule.Error.TranslationKey)
	})

	t.Run("fails above maximum", func(t *testing.T) {
		assert.False(t, validator.MaxLen("party_id", "TNMX", 3).Check())
	})

	t.Run("counts characters rather than bytes", func(t *testing.T) {
		assert.True(t, validator.MaxLen("city", "Zürich", 6).Check())
		assert.True(t, validator.MaxLen("text", "日本語", 3).Check())
	})
}

func TestLen(t *testing.T) {
	rule := validator.Len("country_code", "NL", 2)
	assert.True(t, rule.Check())
	assert.Equal(t, "must be exactly 2 characters long", rule.Error.Message)
	assert.Equal(t, map[string]any{"field": "country_code", "length": 2}, rule.Error.TranslationValues)

	assert.False(t, validator.Len("country_code", "N", 2).Check())
	assert.False(t, validator.Len("country_code", "NLD", 2).Check())
}

func TestPattern(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z]{2}\*[A-Z0-9]{3}$`)

	rule := validator.Pattern("operator", "NL*TNM", re, "operator_id", "must look like CC*PPP")
	assert.True(t, rule.Check())
	assert.Equal(t, "validation.pattern.operator_id", rule.Error.TranslationKey)
	assert.Equal(t, "must look like CC*PPP", rule.Error.Message)

	assert.False(t, validator.Pattern("operator", "NLTNM", re, "operator_id", "x").Check())
}
