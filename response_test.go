package ocpi_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

var fixedNow = time.Date(2015, 6, 30, 21, 59, 59, 123_000_000, time.UTC)

func newBuilder() *ocpi.ResponseBuilder {
	return ocpi.NewResponseBuilder(ocpi.WithClock(func() time.Time { return fixedNow }))
}

func TestResponseBuilder(t *testing.T) {
	t.Parallel()

	b := newBuilder()

	t.Run("success with data", func(t *testing.T) {
		resp := b.Success([]string{"a"}, "")
		assert.Equal(t, ocpi.StatusSuccess, resp.StatusCode)
		assert.Equal(t, "2015-06-30T21:59:59.123Z", resp.Timestamp)

		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":["a"],"status_code":1000,"timestamp":"2015-06-30T21:59:59.123Z"}`, string(raw))
	})

	t.Run("success empty omits data", func(t *testing.T) {
		raw, err := json.Marshal(b.SuccessEmpty("Command accepted"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status_code":1000,"status_message":"Command accepted","timestamp":"2015-06-30T21:59:59.123Z"}`, string(raw))
	})

	t.Run("error", func(t *testing.T) {
		resp := b.Error(ocpi.StatusClientUnknownLocation, "Unknown Location")
		assert.Equal(t, ocpi.StatusClientUnknownLocation, resp.StatusCode)
		assert.Nil(t, resp.Data)
		assert.NoError(t, resp.Validate())
	})

	t.Run("validation errors map to 2001", func(t *testing.T) {
		err := ocpi.DisplayText{Language: "eng", Text: "hi"}.Validate()
		resp := b.ValidationErrorResponse(err)

		assert.Equal(t, ocpi.StatusClientInvalidOrMissingParameters, resp.StatusCode)
		assert.Equal(t, "Invalid or missing parameters", resp.StatusMessage)

		fields, ok := resp.Data.(ocpi.FieldErrors)
		require.True(t, ok)
		assert.True(t, fields.Has("language"))
	})

	t.Run("other errors map to 2000", func(t *testing.T) {
		resp := b.ValidationErrorResponse(errors.New("unexpected end of JSON input"))
		assert.Equal(t, ocpi.StatusClientError, resp.StatusCode)
		assert.Equal(t, "unexpected end of JSON input", resp.StatusMessage)
		assert.Nil(t, resp.Data)
	})

	t.Run("default clock produces valid timestamps", func(t *testing.T) {
		resp := ocpi.NewResponseBuilder().SuccessEmpty("")
		assert.NoError(t, resp.Validate())
	})
}

func TestResponse_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects bad envelope", func(t *testing.T) {
		resp := ocpi.Response[any]{StatusCode: 42, Timestamp: "2015-06-30 21:59:59"}
		verrs := validator.ExtractValidationErrors(resp.Validate())
		assert.Equal(t, []string{"status_code", "timestamp"}, verrs.Fields())
	})

	t.Run("validates data through its Validate method", func(t *testing.T) {
		resp := ocpi.Response[ocpi.DisplayText]{
			Data:       ocpi.DisplayText{Language: "nl", Text: "Oplaadpunt\n"},
			StatusCode: ocpi.StatusSuccess,
			Timestamp:  "2015-06-30T21:59:59Z",
		}
		assert.NoError(t, resp.Validate())

		resp.Data.Language = "NL"
		verrs := validator.ExtractValidationErrors(resp.Validate())
		assert.Equal(t, []string{"data.language"}, verrs.Fields())
	})

	t.Run("nil pointer data is skipped", func(t *testing.T) {
		resp := ocpi.Response[*ocpi.Price]{StatusCode: ocpi.StatusSuccess, Timestamp: "2015-06-30T21:59:59Z"}
		assert.NoError(t, resp.Validate())
	})

	t.Run("decodes from the wire", func(t *testing.T) {
		var resp ocpi.Response[ocpi.Price]
		require.NoError(t, json.Unmarshal([]byte(`{"data":{"excl_vat":1.5,"incl_vat":1.8},"status_code":1000,"timestamp":"2015-06-30T21:59:59Z"}`), &resp))
		assert.InDelta(t, 1.8, *resp.Data.InclVAT, 1e-9)
		assert.NoError(t, resp.Validate())
	})
}
