package locations

import (
	"slices"

	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// EVSE is one charging point; it can charge one vehicle at a time.
type EVSE struct {
	UID                 string               `json:"uid"`
	EvseID              string               `json:"evse_id,omitempty"`
	Status              Status               `json:"status"`
	StatusSchedule      []StatusSchedule     `json:"status_schedule,omitempty"`
	Capabilities        []Capability         `json:"capabilities,omitempty"`
	Connectors          []Connector          `json:"connectors"`
	FloorLevel          string               `json:"floor_level,omitempty"`
	Coordinates         *GeoLocation         `json:"coordinates,omitempty"`
	PhysicalReference   string               `json:"physical_reference,omitempty"`
	Directions          []ocpi.DisplayText   `json:"directions,omitempty"`
	ParkingRestrictions []ParkingRestriction `json:"parking_restrictions,omitempty"`
	Images              []Image              `json:"images,omitempty"`
	LastUpdated         string               `json:"last_updated"`
}

func (e EVSE) Validate() error {
	rules := slices.Concat(
		[]validator.Rule{
			validator.Required("uid", e.UID),
			validator.CiString("uid", e.UID),
			validator.MaxLen("uid", e.UID, 36),
			validator.CiString("evse_id", e.EvseID),
			validator.MaxLen("evse_id", e.EvseID, 48),
			validator.OneOf("status", e.Status),
			validator.MinItems("connectors", e.Connectors, 1),
			validator.MaxLen("floor_level", e.FloorLevel, 4),
			validator.MaxLen("physical_reference", e.PhysicalReference, 16),
			validator.OcpiDateTime("last_updated", e.LastUpdated),
		},
		validator.Each("capabilities", e.Capabilities, validator.OneOf[Capability]),
		validator.Each("parking_restrictions", e.ParkingRestrictions, validator.OneOf[ParkingRestriction]),
	)

	return validator.Join(
		validator.Apply(rules...),
		validator.NestedEach("status_schedule", e.StatusSchedule),
		validator.NestedEach("connectors", e.Connectors),
		validator.NestedPtr("coordinates", e.Coordinates),
		validator.NestedEach("directions", e.Directions),
		validator.NestedEach("images", e.Images),
	)
}

// StatusSchedule announces a planned status change of an EVSE.
type StatusSchedule struct {
	PeriodBegin string  `json:"period_begin"`
	PeriodEnd   *string `json:"period_end,omitempty"`
	Status      Status  `json:"status"`
}

func (s StatusSchedule) Validate() error {
	return validator.Apply(
		validator.OcpiDateTime("period_begin", s.PeriodBegin),
		validator.When(s.PeriodEnd != nil, validator.OcpiDateTime("period_end", validator.Deref(s.PeriodEnd))),
		validator.OneOf("status", s.Status),
	)
}
