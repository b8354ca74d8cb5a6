package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

func TestRequiredSlice(t *testing.T) {
	assert.True(t, validator.RequiredSlice("roles", []string{"CPO"}).Check())
	assert.False(t, validator.RequiredSlice("roles", []string{}).Check())
	assert.False(t, validator.RequiredSlice[string]("roles", nil).Check())
}

func TestMinItems(t *testing.T) {
	rule := validator.MinItems("connectors", []int{1}, 1)
	assert.True(t, rule.Check())
	assert.Equal(t, "must have at least 1 items", rule.Error.Message)
	assert.Equal(t, "validation.min_items", rule.Error.TranslationKey)

	assert.False(t, validator.MinItems("connectors", []int{}, 1).Check())
}

func TestMaxItems(t *testing.T) {
	assert.True(t, validator.MaxItems("images", []int{1, 2}, 2).Check())

	rule := validator.MaxItems("images", []int{1, 2, 3}, 2)
	assert.False(t, rule.Check())
	assert.Equal(t, "validation.max_items", rule.Error.TranslationKey)
}

func TestEach(t *testing.T) {
	ids := []string{"T1", "café", "T3"}

	rules := validator.Each("tariff_ids", ids, validator.CiString)
	require.Len(t, rules, 3)

	err := validator.Apply(rules...)
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "tariff_ids[1]", verrs[0].Field)
	assert.Equal(t, "tariff_ids[1] must be a valid OCPI CiString (only printable ASCII characters allowed)", verrs[0].Message)

	t.Run("empty slice yields no rules", func(t *testing.T) {
		assert.Empty(t, validator.Each("tariff_ids", nil, validator.CiString))
	})
}
