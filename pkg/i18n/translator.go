package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// DefaultLanguage is used when nothing better matches.
const DefaultLanguage = "en"

// Translator looks up messages in per-language catalogs. It is safe for
// concurrent use.
type Translator struct {
	mu            sync.RWMutex
	catalogs      Catalogs
	languages     []string
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when negotiation fails.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey makes T return the key itself for missing entries.
// Enabled by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger; a discard logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs every lookup miss at warn level.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.logMissing = enabled
	}
}

// NewTranslator loads catalogs through adapter. The default language must be
// one of the loaded languages.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalogs, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalogs) == 0 {
		return nil, ErrNoTranslations
	}
	for lang, tree := range catalogs {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: nil catalog for %q", ErrInvalidCatalog, lang)
		}
	}
	if _, ok := catalogs[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q", ErrLanguageNotSupported, t.defaultLang)
	}

	t.catalogs = catalogs
	t.languages, t.matcher = buildMatcher(catalogs, t.defaultLang)

	t.logger.InfoContext(ctx, "translations loaded",
		slog.Any("languages", t.languages),
		slog.String("default", t.defaultLang))
	return t, nil
}

// buildMatcher puts the default language first so the matcher falls back to it.
func buildMatcher(catalogs Catalogs, defaultLang string) ([]string, language.Matcher) {
	langs := make([]string, 0, len(catalogs))
	for lang := range catalogs {
		if lang != defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	langs = slices.Insert(langs, 0, defaultLang)

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tags[i] = language.Make(lang)
	}
	return langs, language.NewMatcher(tags)
}

// SupportedLanguages returns the loaded languages, default first.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.languages)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match negotiates the best supported language for a BCP 47 tag or an
// Accept-Language style list such as "de-AT,de;q=0.9,en;q=0.5".
// Unparseable or unsupported input yields the default language.
func (t *Translator) Match(preferred string) string {
	preferred = strings.TrimSpace(preferred)
	if preferred == "" {
		return t.defaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.languages[index]
}

// Has reports whether lang has a string entry for key.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang. Args are name/value pairs filling %{name}
// placeholders. A missing entry yields the key, or "" with
// WithFallbackToKey(false).
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return substitute(tmpl, pairs(args))
}

// Td is T with an explicit default template for missing entries.
func (t *Translator) Td(lang, key, def string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		tmpl = def
	}
	return substitute(tmpl, pairs(args))
}

// TranslateError renders one validation error in lang. Errors without a
// catalog entry keep their Message.
func (t *Translator) TranslateError(lang string, err validator.ValidationError) string {
	if err.TranslationKey == "" {
		return err.Message
	}
	tmpl, ok := t.lookup(lang, err.TranslationKey)
	if !ok {
		return err.Message
	}

	params := make(map[string]string, len(err.TranslationValues))
	for name, v := range err.TranslationValues {
		params[name] = fmt.Sprint(v)
	}
	return substitute(tmpl, params)
}

// TranslateErrors groups translated messages by field path.
func (t *Translator) TranslateErrors(lang string, errs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, err := range errs {
		out[err.Field] = append(out[err.Field], t.TranslateError(lang, err))
	}
	return out
}

// lookup walks the dot-separated key; only string leaves count as found.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	tree, ok := t.catalogs[lang]
	t.mu.RUnlock()

	if !ok {
		t.missing("language not supported", lang, key)
		return "", false
	}

	var node any = tree
	for part := range strings.SplitSeq(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			t.missing("translation not found", lang, key)
			return "", false
		}
		if node, ok = m[part]; !ok {
			t.missing("translation not found", lang, key)
			return "", false
		}
	}

	s, ok := node.(string)
	if !ok {
		t.missing("translation is not a string", lang, key)
	}
	return s, ok
}

func (t *Translator) missing(msg, lang, key string) {
	if t.logMissing {
		t.logger.Warn(msg, slog.String("lang", lang), slog.String("key", key))
	}
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with params[name]; unknown names are kept.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// pairs turns name, value, name, value... into a map; an odd tail is dropped.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
