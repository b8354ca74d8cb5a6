package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var defaultLocales embed.FS

// DefaultLocales returns an adapter over the built-in en, de and nl catalogs
// covering every validation translation key.
func DefaultLocales() TranslationAdapter {
	return NewFSAdapter(defaultLocales, "locales")
}

// NewDefaultTranslator is NewTranslator over DefaultLocales.
func NewDefaultTranslator(ctx context.Context, opts ...Option) (*Translator, error) {
	return NewTranslator(ctx, DefaultLocales(), opts...)
}
