package cdrs

import "github.com/dmitrymomot/ocpi/pkg/validator"

// ChargingPeriod is a slice of a session during which the same tariff applied.
type ChargingPeriod struct {
	StartDateTime string         `json:"start_date_time"`
	Dimensions    []CdrDimension `json:"dimensions"`
	TariffID      string         `json:"tariff_id,omitempty"`
}

func (p ChargingPeriod) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.OcpiDateTime("start_date_time", p.StartDateTime),
			validator.MinItems("dimensions", p.Dimensions, 1),
			validator.CiString("tariff_id", p.TariffID),
			validator.MaxLen("tariff_id", p.TariffID, 36),
		),
		validator.NestedEach("dimensions", p.Dimensions),
	)
}

// CdrDimension is one measured quantity within a charging period.
type CdrDimension struct {
	Type   CdrDimensionType `json:"type"`
	Volume float64          `json:"volume"`
}

func (d CdrDimension) Validate() error {
	return validator.Apply(
		validator.OneOf("type", d.Type),
		validator.NonNegative("volume", d.Volume),
	)
}
