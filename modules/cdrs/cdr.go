package cdrs

import (
	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/modules/tariffs"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// CDR is a Charge Detail Record. Energy is in kWh and times are in hours.
type CDR struct {
	CountryCode              string           `json:"country_code"`
	PartyID                  string           `json:"party_id"`
	ID                       string           `json:"id"`
	StartDateTime            string           `json:"start_date_time"`
	EndDateTime              string           `json:"end_date_time"`
	SessionID                string           `json:"session_id,omitempty"`
	CdrToken                 CdrToken         `json:"cdr_token"`
	AuthMethod               AuthMethod       `json:"auth_method"`
	AuthorizationReference   string           `json:"authorization_reference,omitempty"`
	CdrLocation              CdrLocation      `json:"cdr_location"`
	MeterID                  string           `json:"meter_id,omitempty"`
	Currency                 string           `json:"currency"`
	Tariffs                  []tariffs.Tariff `json:"tariffs,omitempty"`
	ChargingPeriods          []ChargingPeriod `json:"charging_periods"`
	SignedData               *SignedData      `json:"signed_data,omitempty"`
	TotalCost                ocpi.Price       `json:"total_cost"`
	TotalFixedCost           *ocpi.Price      `json:"total_fixed_cost,omitempty"`
	TotalEnergy              float64          `json:"total_energy"`
	TotalEnergyCost          *ocpi.Price      `json:"total_energy_cost,omitempty"`
	TotalTime                float64          `json:"total_time"`
	TotalTimeCost            *ocpi.Price      `json:"total_time_cost,omitempty"`
	TotalParkingTime         *float64         `json:"total_parking_time,omitempty"`
	TotalParkingCost         *ocpi.Price      `json:"total_parking_cost,omitempty"`
	TotalReservationCost     *ocpi.Price      `json:"total_reservation_cost,omitempty"`
	Remark                   string           `json:"remark,omitempty"`
	InvoiceReferenceID       string           `json:"invoice_reference_id,omitempty"`
	Credit                   *bool            `json:"credit,omitempty"`
	CreditReferenceID        string           `json:"credit_reference_id,omitempty"`
	HomeChargingCompensation *bool            `json:"home_charging_compensation,omitempty"`
	LastUpdated              string           `json:"last_updated"`
}

func (c CDR) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.CiString("country_code", c.CountryCode),
			validator.Len("country_code", c.CountryCode, 2),
			validator.CiString("party_id", c.PartyID),
			validator.Len("party_id", c.PartyID, 3),
			validator.Required("id", c.ID),
			validator.CiString("id", c.ID),
			validator.MaxLen("id", c.ID, 39),
			validator.OcpiDateTime("start_date_time", c.StartDateTime),
			validator.OcpiDateTime("end_date_time", c.EndDateTime),
			validator.CiString("session_id", c.SessionID),
			validator.MaxLen("session_id", c.SessionID, 36),
			validator.OneOf("auth_method", c.AuthMethod),
			validator.CiString("authorization_reference", c.AuthorizationReference),
			validator.MaxLen("authorization_reference", c.AuthorizationReference, 36),
			validator.MaxLen("meter_id", c.MeterID, 255),
			validator.Len("currency", c.Currency, 3),
			validator.CurrencyCode("currency", c.Currency),
			validator.MinItems("charging_periods", c.ChargingPeriods, 1),
			validator.NonNegative("total_energy", c.TotalEnergy),
			validator.NonNegative("total_time", c.TotalTime),
			validator.When(c.TotalParkingTime != nil, validator.NonNegative("total_parking_time", validator.Deref(c.TotalParkingTime))),
			validator.MaxLen("remark", c.Remark, 255),
			validator.CiString("invoice_reference_id", c.InvoiceReferenceID),
			validator.MaxLen("invoice_reference_id", c.InvoiceReferenceID, 39),
			validator.CiString("credit_reference_id", c.CreditReferenceID),
			validator.MaxLen("credit_reference_id", c.CreditReferenceID, 39),
			validator.OcpiDateTime("last_updated", c.LastUpdated),
		),
		validator.Nested("cdr_token", c.CdrToken),
		validator.Nested("cdr_location", c.CdrLocation),
		validator.NestedEach("tariffs", c.Tariffs),
		validator.NestedEach("charging_periods", c.ChargingPeriods),
		validator.NestedPtr("signed_data", c.SignedData),
		validator.Nested("total_cost", c.TotalCost),
		validator.NestedPtr("total_fixed_cost", c.TotalFixedCost),
		validator.NestedPtr("total_energy_cost", c.TotalEnergyCost),
		validator.NestedPtr("total_time_cost", c.TotalTimeCost),
		validator.NestedPtr("total_parking_cost", c.TotalParkingCost),
		validator.NestedPtr("total_reservation_cost", c.TotalReservationCost),
	)
}
