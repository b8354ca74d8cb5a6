package locations

import (
	"slices"

	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Location is a group of EVSEs at one site, owned by one CPO.
type Location struct {
	CountryCode        string                  `json:"country_code"`
	PartyID            string                  `json:"party_id"`
	ID                 string                  `json:"id"`
	Publish            bool                    `json:"publish"`
	PublishAllowedTo   []PublishTokenType      `json:"publish_allowed_to,omitempty"`
	Name               string                  `json:"name,omitempty"`
	Address            string                  `json:"address"`
	City               string                  `json:"city"`
	PostalCode         string                  `json:"postal_code,omitempty"`
	State              string                  `json:"state,omitempty"`
	Country            string                  `json:"country"`
	Coordinates        GeoLocation             `json:"coordinates"`
	RelatedLocations   []AdditionalGeoLocation `json:"related_locations,omitempty"`
	ParkingType        ParkingType             `json:"parking_type,omitempty"`
	EVSEs              []EVSE                  `json:"evses,omitempty"`
	Directions         []ocpi.DisplayText      `json:"directions,omitempty"`
	Operator           *BusinessDetails        `json:"operator,omitempty"`
	Suboperator        *BusinessDetails        `json:"suboperator,omitempty"`
	Owner              *BusinessDetails        `json:"owner,omitempty"`
	Facilities         []Facility              `json:"facilities,omitempty"`
	TimeZone           string                  `json:"time_zone"`
	OpeningTimes       *Hours                  `json:"opening_times,omitempty"`
	ChargingWhenClosed *bool                   `json:"charging_when_closed,omitempty"`
	Images             []Image                 `json:"images,omitempty"`
	EnergyMix          *EnergyMix              `json:"energy_mix,omitempty"`
	LastUpdated        string                  `json:"last_updated"`
}

func (l Location) Validate() error {
	rules := slices.Concat(
		[]validator.Rule{
			validator.CiString("country_code", l.CountryCode),
			validator.Len("country_code", l.CountryCode, 2),
			validator.CountryCode("country_code", l.CountryCode),
			validator.CiString("party_id", l.PartyID),
			validator.Len("party_id", l.PartyID, 3),
			validator.Required("id", l.ID),
			validator.CiString("id", l.ID),
			validator.MaxLen("id", l.ID, 36),
			validator.MaxLen("name", l.Name, 255),
			validator.Required("address", l.Address),
			validator.MaxLen("address", l.Address, 45),
			validator.Required("city", l.City),
			validator.MaxLen("city", l.City, 45),
			validator.MaxLen("postal_code", l.PostalCode, 10),
			validator.MaxLen("state", l.State, 20),
			validator.CountryCode("country", l.Country),
			validator.OptionalOneOf("parking_type", l.ParkingType),
			validator.Required("time_zone", l.TimeZone),
			validator.MaxLen("time_zone", l.TimeZone, 255),
			validator.OcpiDateTime("last_updated", l.LastUpdated),
		},
		validator.Each("facilities", l.Facilities, validator.OneOf[Facility]),
	)

	return validator.Join(
		validator.Apply(rules...),
		validator.NestedEach("publish_allowed_to", l.PublishAllowedTo),
		validator.Nested("coordinates", l.Coordinates),
		validator.NestedEach("related_locations", l.RelatedLocations),
		validator.NestedEach("evses", l.EVSEs),
		validator.NestedEach("directions", l.Directions),
		validator.NestedPtr("operator", l.Operator),
		validator.NestedPtr("suboperator", l.Suboperator),
		validator.NestedPtr("owner", l.Owner),
		validator.NestedPtr("opening_times", l.OpeningTimes),
		validator.NestedEach("images", l.Images),
		validator.NestedPtr("energy_mix", l.EnergyMix),
	)
}
