package cdrs

import "github.com/dmitrymomot/ocpi/pkg/validator"

// SignedData carries calibration-law signed meter values.
type SignedData struct {
	EncodingMethod        string        `json:"encoding_method"`
	EncodingMethodVersion *int          `json:"encoding_method_version,omitempty"`
	PublicKey             string        `json:"public_key,omitempty"`
	SignedValues          []SignedValue `json:"signed_values"`
	URL                   string        `json:"url,omitempty"`
}

func (d SignedData) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.Required("encoding_method", d.EncodingMethod),
			validator.CiString("encoding_method", d.EncodingMethod),
			validator.MaxLen("encoding_method", d.EncodingMethod, 36),
			validator.MaxLen("public_key", d.PublicKey, 512),
			validator.MinItems("signed_values", d.SignedValues, 1),
			validator.MaxLen("url", d.URL, 512),
		),
		validator.NestedEach("signed_values", d.SignedValues),
	)
}

// SignedValue is one signed meter reading.
type SignedValue struct {
	Nature     string `json:"nature"`
	PlainData  string `json:"plain_data"`
	SignedData string `json:"signed_data"`
}

func (v SignedValue) Validate() error {
	return validator.Apply(
		validator.Required("nature", v.Nature),
		validator.CiString("nature", v.Nature),
		validator.MaxLen("nature", v.Nature, 32),
		validator.Required("plain_data", v.PlainData),
		validator.MaxLen("plain_data", v.PlainData, 512),
		validator.Required("signed_data", v.SignedData),
		validator.MaxLen("signed_data", v.SignedData, 5000),
	)
}
