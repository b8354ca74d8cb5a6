package locations

import "github.com/dmitrymomot/ocpi/pkg/validator"

// EnergyMix describes where the delivered energy comes from.
type EnergyMix struct {
	IsGreenEnergy     bool                  `json:"is_green_energy"`
	EnergySources     []EnergySource        `json:"energy_sources,omitempty"`
	EnvironImpact     []EnvironmentalImpact `json:"environ_impact,omitempty"`
	SupplierName      string                `json:"supplier_name,omitempty"`
	EnergyProductName string                `json:"energy_product_name,omitempty"`
}

func (m EnergyMix) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.MaxLen("supplier_name", m.SupplierName, 64),
			validator.MaxLen("energy_product_name", m.EnergyProductName, 64),
		),
		validator.NestedEach("energy_sources", m.EnergySources),
		validator.NestedEach("environ_impact", m.EnvironImpact),
	)
}

// EnergySource is the share of one source in the mix, in percent.
type EnergySource struct {
	Source     EnergySourceCategory `json:"source"`
	Percentage float64              `json:"percentage"`
}

func (s EnergySource) Validate() error {
	return validator.Apply(
		validator.OneOf("source", s.Source),
		validator.Between("percentage", s.Percentage, 0, 100),
	)
}

// EnvironmentalImpact is an amount in g/kWh.
type EnvironmentalImpact struct {
	Category EnvironmentalImpactCategory `json:"category"`
	Amount   float64                     `json:"amount"`
}

func (i EnvironmentalImpact) Validate() error {
	return validator.Apply(
		validator.OneOf("category", i.Category),
		validator.NonNegative("amount", i.Amount),
	)
}
