package i18n

import "context"

type languageContextKey struct{}

// WithLanguage stores the negotiated language in ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFromContext returns the stored language or DefaultLanguage.
func LanguageFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(languageContextKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Tc translates key in the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LanguageFromContext(ctx), key, args...)
}
