package tariffs

import "github.com/dmitrymomot/ocpi/pkg/validator"

// TariffElement groups price components that apply under the same restrictions.
type TariffElement struct {
	PriceComponents []PriceComponent    `json:"price_components"`
	Restrictions    *TariffRestrictions `json:"restrictions,omitempty"`
}

func (e TariffElement) Validate() error {
	return validator.Join(
		validator.Apply(validator.MinItems("price_components", e.PriceComponents, 1)),
		validator.NestedEach("price_components", e.PriceComponents),
		validator.NestedPtr("restrictions", e.Restrictions),
	)
}

// PriceComponent maps the usage of one dimension to an amount of money.
// StepSize is the billing granularity in the unit of the dimension:
// Wh for ENERGY, seconds for TIME and PARKING_TIME, 1 for FLAT.
type PriceComponent struct {
	Type     TariffDimensionType `json:"type"`
	Price    float64             `json:"price"`
	VAT      *float64            `json:"vat,omitempty"`
	StepSize int                 `json:"step_size"`
}

func (c PriceComponent) Validate() error {
	return validator.Apply(
		validator.OneOf("type", c.Type),
		validator.NonNegative("price", c.Price),
		validator.When(c.VAT != nil, validator.NonNegative("vat", validator.Deref(c.VAT))),
		validator.Min("step_size", c.StepSize, 1),
	)
}
