package locations

import (
	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// GeoLocation holds WGS 84 coordinates as decimal degree strings.
type GeoLocation struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

func (g GeoLocation) Validate() error {
	return validator.Apply(
		validator.Latitude("latitude", g.Latitude),
		validator.Longitude("longitude", g.Longitude),
	)
}

// AdditionalGeoLocation is a related point, such as an entrance, with an optional name.
type AdditionalGeoLocation struct {
	Latitude  string            `json:"latitude"`
	Longitude string            `json:"longitude"`
	Name      *ocpi.DisplayText `json:"name,omitempty"`
}

func (g AdditionalGeoLocation) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.Latitude("latitude", g.Latitude),
			validator.Longitude("longitude", g.Longitude),
		),
		validator.NestedPtr("name", g.Name),
	)
}
