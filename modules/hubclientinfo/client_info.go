package hubclientinfo

import (
	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// ClientInfo is the connection status of one party as seen by the hub.
type ClientInfo struct {
	PartyID     string           `json:"party_id"`
	CountryCode string           `json:"country_code"`
	Role        ocpi.Role        `json:"role"`
	Status      ConnectionStatus `json:"status"`
	LastUpdated string           `json:"last_updated"`
}

func (c ClientInfo) Validate() error {
	return validator.Apply(
		validator.CiString("party_id", c.PartyID),
		validator.Len("party_id", c.PartyID, 3),
		validator.CiString("country_code", c.CountryCode),
		validator.Len("country_code", c.CountryCode, 2),
		validator.OneOf("role", c.Role),
		validator.OneOf("status", c.Status),
		validator.OcpiDateTime("last_updated", c.LastUpdated),
	)
}
