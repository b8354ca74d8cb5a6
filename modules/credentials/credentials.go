package credentials

import (
	"slices"

	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/modules/locations"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Credentials carry the token the receiver must use to call the sender back,
// the sender's versions URL and the roles the sender's platform hosts.
type Credentials struct {
	Token string            `json:"token"`
	URL   string            `json:"url"`
	Roles []CredentialsRole `json:"roles"`
}

func (c Credentials) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.Required("token", c.Token),
			validator.MaxLen("token", c.Token, 64),
			validator.ValidURL("url", c.URL),
			validator.MinItems("roles", c.Roles, 1),
		),
		validator.NestedEach("roles", c.Roles),
	)
}

// HasRole reports whether the platform hosts a party with the given role.
func (c Credentials) HasRole(role ocpi.Role) bool {
	return slices.ContainsFunc(c.Roles, func(r CredentialsRole) bool { return r.Role == role })
}

// CredentialsRole is one party hosted on the platform.
type CredentialsRole struct {
	Role            ocpi.Role                 `json:"role"`
	BusinessDetails locations.BusinessDetails `json:"business_details"`
	PartyID         string                    `json:"party_id"`
	CountryCode     string                    `json:"country_code"`
}

func (r CredentialsRole) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.OneOf("role", r.Role),
			validator.CiString("party_id", r.PartyID),
			validator.Len("party_id", r.PartyID, 3),
			validator.CiString("country_code", r.CountryCode),
			validator.Len("country_code", r.CountryCode, 2),
		),
		validator.Nested("business_details", r.BusinessDetails),
	)
}
