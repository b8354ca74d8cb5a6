package ocpi

import "github.com/dmitrymomot/ocpi/pkg/validator"

// Price is an amount in the currency of the object it belongs to.
type Price struct {
	ExclVAT float64  `json:"excl_vat"`
	InclVAT *float64 `json:"incl_vat,omitempty"`
}

func (p Price) Validate() error {
	return validator.Apply(
		validator.NonNegative("excl_vat", p.ExclVAT),
		validator.When(p.InclVAT != nil, validator.NonNegative("incl_vat", validator.Deref(p.InclVAT))),
	)
}
