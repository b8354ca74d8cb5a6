package tokens

import (
	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// AuthorizationInfo is the eMSP's answer to a real-time authorization request.
type AuthorizationInfo struct {
	Allowed                AllowedType         `json:"allowed"`
	Token                  Token               `json:"token"`
	Location               *LocationReferences `json:"location,omitempty"`
	AuthorizationReference string              `json:"authorization_reference,omitempty"`
	Info                   *ocpi.DisplayText   `json:"info,omitempty"`
}

func (a AuthorizationInfo) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.OneOf("allowed", a.Allowed),
			validator.CiString("authorization_reference", a.AuthorizationReference),
			validator.MaxLen("authorization_reference", a.AuthorizationReference, 36),
		),
		validator.Nested("token", a.Token),
		validator.NestedPtr("location", a.Location),
		validator.NestedPtr("info", a.Info),
	)
}

// Authorized reports whether the token may start charging.
func (a AuthorizationInfo) Authorized() bool {
	return a.Allowed == AllowedAllowed
}

// LocationReferences narrows an authorization request to a location and,
// optionally, some of its EVSEs.
type LocationReferences struct {
	LocationID string   `json:"location_id"`
	EVSEUIDs   []string `json:"evse_uids,omitempty"`
}

func (r LocationReferences) Validate() error {
	rules := append([]validator.Rule{
		validator.Required("location_id", r.LocationID),
		validator.CiString("location_id", r.LocationID),
		validator.MaxLen("location_id", r.LocationID, 36),
	}, validator.Each("evse_uids", r.EVSEUIDs, validator.CiString)...)

	return validator.Apply(rules...)
}
