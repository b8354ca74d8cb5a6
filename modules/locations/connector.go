package locations

import (
	"slices"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Connector is a socket or cable available for the driver at an EVSE.
type Connector struct {
	ID                 string          `json:"id"`
	Standard           ConnectorType   `json:"standard"`
	Format             ConnectorFormat `json:"format"`
	PowerType          PowerType       `json:"power_type"`
	MaxVoltage         int             `json:"max_voltage"`
	MaxAmperage        int             `json:"max_amperage"`
	MaxElectricPower   *int            `json:"max_electric_power,omitempty"`
	TariffIDs          []string        `json:"tariff_ids,omitempty"`
	TermsAndConditions *string         `json:"terms_and_conditions,omitempty"`
	LastUpdated        string          `json:"last_updated"`
}

func (c Connector) Validate() error {
	rules := slices.Concat(
		[]validator.Rule{
			validator.Required("id", c.ID),
			validator.CiString("id", c.ID),
			validator.MaxLen("id", c.ID, 36),
			validator.OneOf("standard", c.Standard),
			validator.OneOf("format", c.Format),
			validator.OneOf("power_type", c.PowerType),
			validator.Between("max_voltage", c.MaxVoltage, 1, 2_000_000),
			validator.Between("max_amperage", c.MaxAmperage, 1, 1_000_000),
			validator.When(c.MaxElectricPower != nil,
				validator.Between("max_electric_power", validator.Deref(c.MaxElectricPower), 1, 10_000_000)),
			validator.When(c.TermsAndConditions != nil, validator.ValidURL("terms_and_conditions", validator.Deref(c.TermsAndConditions))),
			validator.OcpiDateTime("last_updated", c.LastUpdated),
		},
		validator.Each("tariff_ids", c.TariffIDs, validator.CiString),
		validator.Each("tariff_ids", c.TariffIDs, func(field, id string) validator.Rule {
			return validator.MaxLen(field, id, 36)
		}),
	)

	return validator.Apply(rules...)
}
