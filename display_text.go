package ocpi

import "github.com/dmitrymomot/ocpi/pkg/validator"

// DisplayText is a human readable text in one language.
type DisplayText struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

func (d DisplayText) Validate() error {
	return validator.Apply(
		validator.Len("language", d.Language, 2),
		validator.LanguageCode("language", d.Language),
		validator.MaxLen("text", d.Text, 512),
	)
}
