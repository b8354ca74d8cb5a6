package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n: adapter is nil")
	ErrLanguageNotSupported = errors.New("i18n: language not supported")
	ErrEmptyLanguage        = errors.New("i18n: empty language code")
	ErrNoTranslations       = errors.New("i18n: no translations found")

	ErrParsingCancelled  = errors.New("i18n: parsing cancelled")
	ErrFailedToParseJSON  = errors.New("i18n: failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("i18n: failed to parse YAML content")
	ErrInvalidCatalog     = errors.New("i18n: invalid catalog structure")
	ErrLoadingCancelled   = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadFile   = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile  = errors.New("i18n: failed to parse translation file")
	ErrFailedToReadDir    = errors.New("i18n: failed to read translation directory")
)
