package ocpi_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi"
)

func TestNewRequestID(t *testing.T) {
	t.Parallel()

	a, b := ocpi.NewRequestID(), ocpi.NewRequestID()
	assert.NotEqual(t, a, b)

	id, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())

	_, err = uuid.Parse(ocpi.NewCorrelationID())
	assert.NoError(t, err)
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, ocpi.RequestIDFromContext(ctx))
	assert.Empty(t, ocpi.CorrelationIDFromContext(ctx))

	ctx = ocpi.WithRequestID(ctx, "req-1")
	ctx = ocpi.WithCorrelationID(ctx, "corr-1")
	assert.Equal(t, "req-1", ocpi.RequestIDFromContext(ctx))
	assert.Equal(t, "corr-1", ocpi.CorrelationIDFromContext(ctx))
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	key := ocpi.NewContextKey("count")
	ctx := context.WithValue(context.Background(), key, 3)

	assert.Equal(t, 3, ocpi.ContextValue[int](ctx, key))
	assert.Empty(t, ocpi.ContextValue[string](ctx, key))
	assert.Equal(t, "ocpi context key count", key.String())
}
