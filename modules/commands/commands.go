package commands

import (
	"github.com/dmitrymomot/ocpi/modules/tokens"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Command is a request body of the Commands module.
type Command interface {
	validator.Validatable
	Type() CommandType
}

var (
	_ Command = CancelReservation{}
	_ Command = ReserveNow{}
	_ Command = StartSession{}
	_ Command = StopSession{}
	_ Command = UnlockConnector{}
)

// CancelReservation cancels an existing reservation.
type CancelReservation struct {
	ResponseURL   string `json:"response_url"`
	ReservationID string `json:"reservation_id"`
}

func (CancelReservation) Type() CommandType { return CommandCancelReservation }

func (c CancelReservation) Validate() error {
	return validator.Apply(
		validator.ValidURL("response_url", c.ResponseURL),
		validator.Required("reservation_id", c.ReservationID),
		validator.CiString("reservation_id", c.ReservationID),
		validator.MaxLen("reservation_id", c.ReservationID, 36),
	)
}

// ReserveNow reserves a location, or one of its EVSEs, for a token until ExpiryDate.
type ReserveNow struct {
	ResponseURL            string       `json:"response_url"`
	Token                  tokens.Token `json:"token"`
	ExpiryDate             string       `json:"expiry_date"`
	ReservationID          string       `json:"reservation_id"`
	LocationID             string       `json:"location_id"`
	EVSEUID                string       `json:"evse_uid,omitempty"`
	AuthorizationReference string       `json:"authorization_reference,omitempty"`
}

func (ReserveNow) Type() CommandType { return CommandReserveNow }

func (c ReserveNow) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.ValidURL("response_url", c.ResponseURL),
			validator.OcpiDateTime("expiry_date", c.ExpiryDate),
			validator.Required("reservation_id", c.ReservationID),
			validator.CiString("reservation_id", c.ReservationID),
			validator.MaxLen("reservation_id", c.ReservationID, 36),
			validator.Required("location_id", c.LocationID),
			validator.CiString("location_id", c.LocationID),
			validator.MaxLen("location_id", c.LocationID, 36),
			validator.CiString("evse_uid", c.EVSEUID),
			validator.MaxLen("evse_uid", c.EVSEUID, 36),
			validator.CiString("authorization_reference", c.AuthorizationReference),
			validator.MaxLen("authorization_reference", c.AuthorizationReference, 36),
		),
		validator.Nested("token", c.Token),
	)
}

// StartSession asks the CPO to start charging for a token.
// ConnectorID is only meaningful together with EVSEUID.
type StartSession struct {
	ResponseURL            string       `json:"response_url"`
	Token                  tokens.Token `json:"token"`
	LocationID             string       `json:"location_id"`
	EVSEUID                string       `json:"evse_uid,omitempty"`
	ConnectorID            string       `json:"connector_id,omitempty"`
	AuthorizationReference string       `json:"authorization_reference,omitempty"`
}

func (StartSession) Type() CommandType { return CommandStartSession }

func (c StartSession) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.ValidURL("response_url", c.ResponseURL),
			validator.Required("location_id", c.LocationID),
			validator.CiString("location_id", c.LocationID),
			validator.MaxLen("location_id", c.LocationID, 36),
			validator.CiString("evse_uid", c.EVSEUID),
			validator.MaxLen("evse_uid", c.EVSEUID, 36),
			validator.CiString("connector_id", c.ConnectorID),
			validator.MaxLen("connector_id", c.ConnectorID, 36),
			validator.CiString("authorization_reference", c.AuthorizationReference),
			validator.MaxLen("authorization_reference", c.AuthorizationReference, 36),
		),
		validator.Nested("token", c.Token),
	)
}

// StopSession asks the CPO to stop a running session.
type StopSession struct {
	ResponseURL string `json:"response_url"`
	SessionID   string `json:"session_id"`
}

func (StopSession) Type() CommandType { return CommandStopSession }

func (c StopSession) Validate() error {
	return validator.Apply(
		validator.ValidURL("response_url", c.ResponseURL),
		validator.Required("session_id", c.SessionID),
		validator.CiString("session_id", c.SessionID),
		validator.MaxLen("session_id", c.SessionID, 36),
	)
}

// UnlockConnector releases the cable from a connector.
type UnlockConnector struct {
	ResponseURL string `json:"response_url"`
	LocationID  string `json:"location_id"`
	EVSEUID     string `json:"evse_uid"`
	ConnectorID string `json:"connector_id"`
}

func (UnlockConnector) Type() CommandType { return CommandUnlockConnector }

func (c UnlockConnector) Validate() error {
	return validator.Apply(
		validator.ValidURL("response_url", c.ResponseURL),
		validator.Required("location_id", c.LocationID),
		validator.CiString("location_id", c.LocationID),
		validator.MaxLen("location_id", c.LocationID, 36),
		validator.Required("evse_uid", c.EVSEUID),
		validator.CiString("evse_uid", c.EVSEUID),
		validator.MaxLen("evse_uid", c.EVSEUID, 36),
		validator.Required("connector_id", c.ConnectorID),
		validator.CiString("connector_id", c.ConnectorID),
		validator.MaxLen("connector_id", c.ConnectorID, 36),
	)
}
