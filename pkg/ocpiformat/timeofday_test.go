package ocpiformat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi/pkg/ocpiformat"
)

const timeOfDayMessage = "period_begin must be a valid time in HH:MM format (00:00-23:59)"

func TestTimeOfDayRule(t *testing.T) {
	t.Parallel()

	rule := ocpiformat.TimeOfDay

	t.Run("name", func(t *testing.T) {
		assert.Equal(t, "ocpi_time", rule.Name())
	})

	for _, in := range []string{"00:00", "23:59", "09:05", "12:30", "19:45", "20:00"} {
		t.Run("accepts "+in, func(t *testing.T) {
			out := rule.Validate("period_begin", in)
			assert.True(t, out.Valid)
			assert.Empty(t, out.Message)
		})
	}

	for _, in := range []string{"24:00", "9:05", "12:60", "12:3", "1230", "12:30:00", " 12:30", "12:30\n", "", "ab:cd", "-1:00"} {
		t.Run("rejects "+in, func(t *testing.T) {
			out := rule.Validate("period_begin", in)
			assert.False(t, out.Valid)
			assert.Equal(t, timeOfDayMessage, out.Message)
		})
	}

	t.Run("rejects non-string values", func(t *testing.T) {
		for _, v := range []any{nil, 1230, 12.30, []byte("12:30")} {
			out := rule.Validate("period_begin", v)
			assert.False(t, out.Valid)
			assert.Equal(t, timeOfDayMessage, out.Message)
		}
	})
}

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	h, m, err := ocpiformat.ParseTimeOfDay("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 45, m)

	_, _, err = ocpiformat.ParseTimeOfDay("7:45")
	assert.True(t, errors.Is(err, ocpiformat.ErrInvalidTimeOfDay))
}

func TestMinutesSinceMidnight(t *testing.T) {
	t.Parallel()

	got, err := ocpiformat.MinutesSinceMidnight("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = ocpiformat.MinutesSinceMidnight("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, got)

	_, err = ocpiformat.MinutesSinceMidnight("24:00")
	assert.Error(t, err)
}
