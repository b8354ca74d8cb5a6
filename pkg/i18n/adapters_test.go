package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	catalogs, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalogs)

	data := i18n.Catalogs{"en": {"hello": "Hello"}}
	catalogs, err = (&i18n.MapAdapter{Data: data}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, catalogs)
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "en.yaml")
	require.NoError(t, os.WriteFile(file, []byte("en:\n  hello: Hello\n"), 0o600))
	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	t.Run("loads file", func(t *testing.T) {
		catalogs, err := i18n.NewFileAdapter(i18n.YAMLParser{}, file).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", catalogs["en"]["hello"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(i18n.YAMLParser{}, filepath.Join(dir, "nope.yaml")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(i18n.YAMLParser{}, empty).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("wrong parser", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(i18n.JSONParser{}, file).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFileAdapter(nil, file))
		assert.Nil(t, i18n.NewFileAdapter(i18n.YAMLParser{}, ""))
	})
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.yaml":       {Data: []byte("en:\n  hello: Hello\n  bye: Bye\n")},
		"locales/en_extra.json": {Data: []byte(`{"en": {"bye": "Goodbye"}}`)},
		"locales/de.yml":        {Data: []byte("de:\n  hello: Hallo\n")},
		"locales/notes.txt":     {Data: []byte("ignored")},
		"locales/sub/fr.yaml":   {Data: []byte("fr:\n  hello: Bonjour\n")},
	}

	t.Run("merges files per language", func(t *testing.T) {
		catalogs, err := i18n.NewFSAdapter(fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, catalogs, 2)
		assert.Equal(t, "Hello", catalogs["en"]["hello"])
		assert.Equal(t, "Goodbye", catalogs["en"]["bye"])
		assert.Equal(t, "Hallo", catalogs["de"]["hello"])
	})

	t.Run("directory without catalogs", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(fstest.MapFS{"x/readme.md": {}}, "x").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(fsys, "missing").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("broken file", func(t *testing.T) {
		broken := fstest.MapFS{"l/en.json": {Data: []byte("{")}}
		_, err := i18n.NewFSAdapter(broken, "l").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFSAdapter(nil, "locales"))
		assert.Nil(t, i18n.NewFSAdapter(fsys, ""))
	})
}
