package tariffs

import (
	"time"

	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/modules/locations"
	"github.com/dmitrymomot/ocpi/pkg/ocpiformat"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Tariff is the price list a CPO applies to charging sessions.
type Tariff struct {
	CountryCode   string               `json:"country_code"`
	PartyID       string               `json:"party_id"`
	ID            string               `json:"id"`
	Currency      string               `json:"currency"`
	Type          TariffType           `json:"type,omitempty"`
	TariffAltText []ocpi.DisplayText   `json:"tariff_alt_text,omitempty"`
	TariffAltURL  *string              `json:"tariff_alt_url,omitempty"`
	MinPrice      *ocpi.Price          `json:"min_price,omitempty"`
	MaxPrice      *ocpi.Price          `json:"max_price,omitempty"`
	Elements      []TariffElement      `json:"elements"`
	StartDateTime *string              `json:"start_date_time,omitempty"`
	EndDateTime   *string              `json:"end_date_time,omitempty"`
	EnergyMix     *locations.EnergyMix `json:"energy_mix,omitempty"`
	LastUpdated   string               `json:"last_updated"`
}

func (t Tariff) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.CiString("country_code", t.CountryCode),
			validator.Len("country_code", t.CountryCode, 2),
			validator.CiString("party_id", t.PartyID),
			validator.Len("party_id", t.PartyID, 3),
			validator.Required("id", t.ID),
			validator.CiString("id", t.ID),
			validator.MaxLen("id", t.ID, 36),
			validator.Len("currency", t.Currency, 3),
			validator.CurrencyCode("currency", t.Currency),
			validator.OptionalOneOf("type", t.Type),
			validator.When(t.TariffAltURL != nil, validator.ValidURL("tariff_alt_url", validator.Deref(t.TariffAltURL))),
			validator.MinItems("elements", t.Elements, 1),
			validator.When(t.StartDateTime != nil, validator.OcpiDateTime("start_date_time", validator.Deref(t.StartDateTime))),
			validator.When(t.EndDateTime != nil, validator.OcpiDateTime("end_date_time", validator.Deref(t.EndDateTime))),
			validator.OcpiDateTime("last_updated", t.LastUpdated),
		),
		validator.NestedEach("tariff_alt_text", t.TariffAltText),
		validator.NestedPtr("min_price", t.MinPrice),
		validator.NestedPtr("max_price", t.MaxPrice),
		validator.NestedEach("elements", t.Elements),
		validator.NestedPtr("energy_mix", t.EnergyMix),
	)
}

// ActiveAt reports whether at falls inside the tariff's validity window.
// The start is inclusive, the end exclusive; unset bounds are open.
func (t Tariff) ActiveAt(at time.Time) (bool, error) {
	if t.StartDateTime != nil {
		start, err := ocpiformat.ParseDateTime(*t.StartDateTime)
		if err != nil {
			return false, err
		}
		if at.Before(start) {
			return false, nil
		}
	}

	if t.EndDateTime != nil {
		end, err := ocpiformat.ParseDateTime(*t.EndDateTime)
		if err != nil {
			return false, err
		}
		if !at.Before(end) {
			return false, nil
		}
	}

	return true, nil
}
