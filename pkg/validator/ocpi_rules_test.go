package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi/pkg/ocpiformat"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

func TestCiString(t *testing.T) {
	t.Run("passes for printable ascii", func(t *testing.T) {
		rule := validator.CiString("party_id", "TNM")
		assert.True(t, rule.Check())
		assert.Equal(t, "party_id", rule.Error.Field)
		assert.Equal(t, "party_id must be a valid OCPI CiString (only printable ASCII characters allowed)", rule.Error.Message)
		assert.Equal(t, "validation.ocpi_cistring", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "party_id"}, rule.Error.TranslationValues)
	})

	t.Run("empty string is valid", func(t *testing.T) {
		assert.True(t, validator.CiString("party_id", "").Check())
	})

	t.Run("fails for control and non-ascii characters", func(t *testing.T) {
		assert.False(t, validator.CiString("party_id", "T\tNM").Check())
		assert.False(t, validator.CiString("party_id", "TÑM").Check())
	})
}

func TestOcpiDateTime(t *testing.T) {
	rule := validator.OcpiDateTime("last_updated", "2015-06-29T20:39:09Z")
	assert.True(t, rule.Check())
	assert.Equal(t, "validation.ocpi_datetime", rule.Error.TranslationKey)
	assert.Equal(t, "last_updated must be a valid OCPI DateTime (max 25 chars: YYYY-MM-DDTHH:mm:ss[.fff][Z] or YYYY-MM-DDTHH:mm:ss[Z|±HH:mm])", rule.Error.Message)

	assert.False(t, validator.OcpiDateTime("last_updated", "2015-02-30T20:39:09Z").Check())
	assert.False(t, validator.OcpiDateTime("last_updated", "").Check())
}

func TestTimeOfDay(t *testing.T) {
	rule := validator.TimeOfDay("period_begin", "08:00")
	assert.True(t, rule.Check())
	assert.Equal(t, "validation.ocpi_time", rule.Error.TranslationKey)
	assert.Equal(t, "period_begin must be a valid time in HH:MM format (00:00-23:59)", rule.Error.Message)

	assert.False(t, validator.TimeOfDay("period_begin", "8:00").Check())
}

func TestFormat(t *testing.T) {
	t.Run("untyped values go through the type gate", func(t *testing.T) {
		assert.True(t, validator.Format(ocpiformat.DateTime, "timestamp", "2015-06-29T20:39:09").Check())
		assert.False(t, validator.Format(ocpiformat.DateTime, "timestamp", 1435610349).Check())
		assert.False(t, validator.Format(ocpiformat.CiString, "id", nil).Check())
	})

	t.Run("nil rule always fails", func(t *testing.T) {
		rule := validator.Format(nil, "id", "x")
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.unknown_format", rule.Error.TranslationKey)
		assert.Equal(t, validator.ErrUnknownFormat.Error(), rule.Error.Message)
	})

	t.Run("aggregates with other rules", func(t *testing.T) {
		err := validator.Apply(
			validator.CiString("country_code", "N\nL"),
			validator.Len("country_code", "N\nL", 2),
			validator.OcpiDateTime("last_updated", "yesterday"),
		)
		require.Error(t, err)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"country_code", "last_updated"}, verrs.Fields())
	})
}
