package tariffs

import (
	"slices"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// TariffRestrictions describe when a tariff element is active during a session.
// All set restrictions must match; times and dates are in the location's local time.
type TariffRestrictions struct {
	StartTime   *string                    `json:"start_time,omitempty"`
	EndTime     *string                    `json:"end_time,omitempty"`
	StartDate   *string                    `json:"start_date,omitempty"`
	EndDate     *string                    `json:"end_date,omitempty"`
	MinKWh      *float64                   `json:"min_kwh,omitempty"`
	MaxKWh      *float64                   `json:"max_kwh,omitempty"`
	MinCurrent  *float64                   `json:"min_current,omitempty"`
	MaxCurrent  *float64                   `json:"max_current,omitempty"`
	MinPower    *float64                   `json:"min_power,omitempty"`
	MaxPower    *float64                   `json:"max_power,omitempty"`
	MinDuration *int                       `json:"min_duration,omitempty"`
	MaxDuration *int                       `json:"max_duration,omitempty"`
	DayOfWeek   []DayOfWeek                `json:"day_of_week,omitempty"`
	Reservation ReservationRestrictionType `json:"reservation,omitempty"`
}

func (r TariffRestrictions) Validate() error {
	rules := slices.Concat(
		[]validator.Rule{
			validator.When(r.StartTime != nil, validator.TimeOfDay("start_time", validator.Deref(r.StartTime))),
			validator.When(r.EndTime != nil, validator.TimeOfDay("end_time", validator.Deref(r.EndTime))),
			validator.When(r.StartDate != nil, validator.ISODate("start_date", validator.Deref(r.StartDate))),
			validator.When(r.EndDate != nil, validator.ISODate("end_date", validator.Deref(r.EndDate))),
			optionalNonNegative("min_kwh", r.MinKWh),
			optionalNonNegative("max_kwh", r.MaxKWh),
			optionalNonNegative("min_current", r.MinCurrent),
			optionalNonNegative("max_current", r.MaxCurrent),
			optionalNonNegative("min_power", r.MinPower),
			optionalNonNegative("max_power", r.MaxPower),
			optionalNonNegative("min_duration", r.MinDuration),
			optionalNonNegative("max_duration", r.MaxDuration),
			validator.OptionalOneOf("reservation", r.Reservation),
		},
		validator.Each("day_of_week", r.DayOfWeek, validator.OneOf[DayOfWeek]),
	)

	return validator.Apply(rules...)
}

func optionalNonNegative[T validator.Numeric](field string, v *T) validator.Rule {
	return validator.When(v != nil, validator.NonNegative(field, validator.Deref(v)))
}
