package ocpi

import (
	"reflect"
	"time"

	"github.com/dmitrymomot/ocpi/pkg/ocpiformat"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Response is the envelope around every OCPI payload.
// Data is an object for cardinality 1 or ?, a list for * or +, and omitted
// for errors and operations without a result.
type Response[T any] struct {
	Data          T          `json:"data,omitempty"`
	StatusCode    StatusCode `json:"status_code"`
	StatusMessage string     `json:"status_message,omitempty"`
	Timestamp     string     `json:"timestamp"`
}

// Validate checks the envelope fields. Data is validated as well when it
// implements validator.Validatable and is not a nil pointer.
func (r Response[T]) Validate() error {
	envelope := validator.Apply(
		validator.Between("status_code", int(r.StatusCode), 1000, 9999),
		validator.Required("timestamp", r.Timestamp),
		validator.OcpiDateTime("timestamp", r.Timestamp),
	)

	data, ok := any(r.Data).(validator.Validatable)
	if !ok || isNilPointer(data) {
		return envelope
	}
	return validator.Join(envelope, validator.Nested("data", data))
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ResponseBuilder stamps responses with the current time.
type ResponseBuilder struct {
	now func() time.Time
}

// BuilderOption configures a ResponseBuilder.
type BuilderOption func(*ResponseBuilder)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *ResponseBuilder) {
		if now != nil {
			b.now = now
		}
	}
}

func NewResponseBuilder(opts ...BuilderOption) *ResponseBuilder {
	b := &ResponseBuilder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Success wraps data with status 1000.
func (b *ResponseBuilder) Success(data any, message string) Response[any] {
	return b.build(data, StatusSuccess, message)
}

// SuccessEmpty is a 1000 response without data.
func (b *ResponseBuilder) SuccessEmpty(message string) Response[any] {
	return b.build(nil, StatusSuccess, message)
}

// Error is a response without data and the given status.
func (b *ResponseBuilder) Error(code StatusCode, message string) Response[any] {
	return b.build(nil, code, message)
}

// ValidationErrorResponse maps a failed Validate call to status 2001 with the
// field messages as data. Any other error is reported as a generic client
// error carrying the error text.
func (b *ResponseBuilder) ValidationErrorResponse(err error) Response[any] {
	fields := NewFieldErrors(err)
	if fields == nil {
		msg := StatusClientError.Text()
		if err != nil {
			msg = err.Error()
		}
		return b.build(nil, StatusClientError, msg)
	}
	return b.build(fields, StatusClientInvalidOrMissingParameters, StatusClientInvalidOrMissingParameters.Text())
}

func (b *ResponseBuilder) build(data any, code StatusCode, message string) Response[any] {
	return Response[any]{
		Data:          data,
		StatusCode:    code,
		StatusMessage: message,
		Timestamp:     ocpiformat.FormatDateTime(b.now()),
	}
}
