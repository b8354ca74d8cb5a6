package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	p := i18n.YAMLParser{}

	t.Run("nested catalogs", func(t *testing.T) {
		t.Parallel()
		content := []byte("en:\n  validation:\n    required: field is required\nde:\n  validation:\n    required: Feld ist erforderlich\n")

		catalogs, err := p.Parse(context.Background(), content)
		require.NoError(t, err)
		require.Len(t, catalogs, 2)

		validation, ok := catalogs["de"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Feld ist erforderlich", validation["required"])
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), []byte("en: [unclosed"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("language must hold a map", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), []byte("en: hello\n"))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), []byte(""))
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte("en:\n  a: b\n"))
		assert.ErrorIs(t, err, i18n.ErrParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestJSONParser(t *testing.T) {
	t.Parallel()

	p := i18n.JSONParser{}

	catalogs, err := p.Parse(context.Background(), []byte(`{"nl": {"validation": {"url": "moet een geldige URL zijn"}}}`))
	require.NoError(t, err)
	assert.Contains(t, catalogs, "nl")

	_, err = p.Parse(context.Background(), []byte(`{"nl": {`))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	_, err = p.Parse(context.Background(), []byte(`{"nl": ["x"]}`))
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
}

func TestParserForFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want i18n.Parser
	}{
		{"en.yaml", i18n.YAMLParser{}},
		{"en.YML", i18n.YAMLParser{}},
		{"locales/de.json", i18n.JSONParser{}},
		{"README.md", nil},
		{"noext", nil},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ParserForFile(tt.file))
		})
	}
}
