package sessions

import (
	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/modules/cdrs"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Session is an ongoing or finished charging session. Kwh is the energy
// charged so far.
type Session struct {
	CountryCode            string                `json:"country_code"`
	PartyID                string                `json:"party_id"`
	ID                     string                `json:"id"`
	StartDateTime          string                `json:"start_date_time"`
	EndDateTime            *string               `json:"end_date_time,omitempty"`
	Kwh                    float64               `json:"kwh"`
	CdrToken               cdrs.CdrToken         `json:"cdr_token"`
	AuthMethod             cdrs.AuthMethod       `json:"auth_method"`
	AuthorizationReference string                `json:"authorization_reference,omitempty"`
	LocationID             string                `json:"location_id"`
	EVSEUID                string                `json:"evse_uid"`
	ConnectorID            string                `json:"connector_id"`
	MeterID                string                `json:"meter_id,omitempty"`
	Currency               string                `json:"currency"`
	ChargingPeriods        []cdrs.ChargingPeriod `json:"charging_periods,omitempty"`
	TotalCost              *ocpi.Price           `json:"total_cost,omitempty"`
	Status                 SessionStatus         `json:"status"`
	LastUpdated            string                `json:"last_updated"`
}

func (s Session) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.CiString("country_code", s.CountryCode),
			validator.Len("country_code", s.CountryCode, 2),
			validator.CiString("party_id", s.PartyID),
			validator.Len("party_id", s.PartyID, 3),
			validator.Required("id", s.ID),
			validator.CiString("id", s.ID),
			validator.MaxLen("id", s.ID, 36),
			validator.OcpiDateTime("start_date_time", s.StartDateTime),
			validator.When(s.EndDateTime != nil, validator.OcpiDateTime("end_date_time", validator.Deref(s.EndDateTime))),
			validator.NonNegative("kwh", s.Kwh),
			validator.OneOf("auth_method", s.AuthMethod),
			validator.CiString("authorization_reference", s.AuthorizationReference),
			validator.MaxLen("authorization_reference", s.AuthorizationReference, 36),
			validator.Required("location_id", s.LocationID),
			validator.CiString("location_id", s.LocationID),
			validator.MaxLen("location_id", s.LocationID, 36),
			validator.Required("evse_uid", s.EVSEUID),
			validator.CiString("evse_uid", s.EVSEUID),
			validator.MaxLen("evse_uid", s.EVSEUID, 36),
			validator.Required("connector_id", s.ConnectorID),
			validator.CiString("connector_id", s.ConnectorID),
			validator.MaxLen("connector_id", s.ConnectorID, 36),
			validator.MaxLen("meter_id", s.MeterID, 255),
			validator.Len("currency", s.Currency, 3),
			validator.CurrencyCode("currency", s.Currency),
			validator.OneOf("status", s.Status),
			validator.OcpiDateTime("last_updated", s.LastUpdated),
		),
		validator.Nested("cdr_token", s.CdrToken),
		validator.NestedEach("charging_periods", s.ChargingPeriods),
		validator.NestedPtr("total_cost", s.TotalCost),
	)
}

// ChargingPreferences are set by the driver through the eMSP. EnergyNeed is in kWh.
type ChargingPreferences struct {
	ProfileType      ProfileType `json:"profile_type"`
	DepartureTime    *string     `json:"departure_time,omitempty"`
	EnergyNeed       *float64    `json:"energy_need,omitempty"`
	DischargeAllowed *bool       `json:"discharge_allowed,omitempty"`
}

func (p ChargingPreferences) Validate() error {
	return validator.Apply(
		validator.OneOf("profile_type", p.ProfileType),
		validator.When(p.DepartureTime != nil, validator.OcpiDateTime("departure_time", validator.Deref(p.DepartureTime))),
		validator.When(p.EnergyNeed != nil, validator.NonNegative("energy_need", validator.Deref(p.EnergyNeed))),
	)
}
