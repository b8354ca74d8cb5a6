package cdrs

import (
	"github.com/dmitrymomot/ocpi/modules/locations"
	"github.com/dmitrymomot/ocpi/modules/tokens"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// CdrToken is the subset of a Token that is copied into sessions and CDRs.
type CdrToken struct {
	CountryCode string           `json:"country_code"`
	PartyID     string           `json:"party_id"`
	UID         string           `json:"uid"`
	Type        tokens.TokenType `json:"type"`
	ContractID  string           `json:"contract_id"`
}

func (t CdrToken) Validate() error {
	return validator.Apply(
		validator.CiString("country_code", t.CountryCode),
		validator.Len("country_code", t.CountryCode, 2),
		validator.CiString("party_id", t.PartyID),
		validator.Len("party_id", t.PartyID, 3),
		validator.Required("uid", t.UID),
		validator.CiString("uid", t.UID),
		validator.MaxLen("uid", t.UID, 36),
		validator.OneOf("type", t.Type),
		validator.Required("contract_id", t.ContractID),
		validator.CiString("contract_id", t.ContractID),
		validator.MaxLen("contract_id", t.ContractID, 36),
	)
}

// CdrLocation is a snapshot of the location, EVSE and connector a session used.
type CdrLocation struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name,omitempty"`
	Address            string                    `json:"address"`
	City               string                    `json:"city"`
	PostalCode         string                    `json:"postal_code,omitempty"`
	State              string                    `json:"state,omitempty"`
	Country            string                    `json:"country"`
	Coordinates        locations.GeoLocation     `json:"coordinates"`
	EVSEUID            string                    `json:"evse_uid"`
	EVSEID             string                    `json:"evse_id"`
	ConnectorID        string                    `json:"connector_id"`
	ConnectorStandard  locations.ConnectorType   `json:"connector_standard"`
	ConnectorFormat    locations.ConnectorFormat `json:"connector_format"`
	ConnectorPowerType locations.PowerType       `json:"connector_power_type"`
}

func (l CdrLocation) Validate() error {
	return validator.Join(
		validator.Apply(
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
			validator.Required("evse_uid", l.EVSEUID),
			validator.CiString("evse_uid", l.EVSEUID),
			validator.MaxLen("evse_uid", l.EVSEUID, 36),
			validator.Required("evse_id", l.EVSEID),
			validator.CiString("evse_id", l.EVSEID),
			validator.MaxLen("evse_id", l.EVSEID, 48),
			validator.Required("connector_id", l.ConnectorID),
			validator.CiString("connector_id", l.ConnectorID),
			validator.MaxLen("connector_id", l.ConnectorID, 36),
			validator.OneOf("connector_standard", l.ConnectorStandard),
			validator.OneOf("connector_format", l.ConnectorFormat),
			validator.OneOf("connector_power_type", l.ConnectorPowerType),
		),
		validator.Nested("coordinates", l.Coordinates),
	)
}
