package chargingprofiles

import (
	"time"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// ChargingProfile limits the charging rate over time. Limits and the minimum
// rate are expressed in ChargingRateUnit with at most one decimal.
type ChargingProfile struct {
	StartDateTime         *string                 `json:"start_date_time,omitempty"`
	Duration              *int                    `json:"duration,omitempty"`
	ChargingRateUnit      ChargingRateUnit        `json:"charging_rate_unit"`
	MinChargingRate       *float64                `json:"min_charging_rate,omitempty"`
	ChargingProfilePeriod []ChargingProfilePeriod `json:"charging_profile_period,omitempty"`
}

func (p ChargingProfile) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.When(p.StartDateTime != nil, validator.OcpiDateTime("start_date_time", validator.Deref(p.StartDateTime))),
			validator.When(p.Duration != nil, validator.NonNegative("duration", validator.Deref(p.Duration))),
			validator.OneOf("charging_rate_unit", p.ChargingRateUnit),
			validator.When(p.MinChargingRate != nil, validator.NonNegative("min_charging_rate", validator.Deref(p.MinChargingRate))),
			validator.When(p.MinChargingRate != nil, validator.MaxDecimalPlaces("min_charging_rate", validator.Deref(p.MinChargingRate), 1)),
		),
		validator.NestedEach("charging_profile_period", p.ChargingProfilePeriod),
	)
}

// LimitAt returns the limit of the period in force at offset from the
// profile start. Periods are expected in ascending start_period order.
func (p ChargingProfile) LimitAt(offset time.Duration) (float64, bool) {
	if p.Duration != nil && offset >= time.Duration(*p.Duration)*time.Second {
		return 0, false
	}

	var (
		limit float64
		found bool
	)
	for _, period := range p.ChargingProfilePeriod {
		if time.Duration(period.StartPeriod)*time.Second > offset {
			break
		}
		limit, found = period.Limit, true
	}
	return limit, found
}

// ChargingProfilePeriod sets Limit from StartPeriod seconds after the profile start.
type ChargingProfilePeriod struct {
	StartPeriod int     `json:"start_period"`
	Limit       float64 `json:"limit"`
}

func (p ChargingProfilePeriod) Validate() error {
	return validator.Apply(
		validator.NonNegative("start_period", p.StartPeriod),
		validator.NonNegative("limit", p.Limit),
		validator.MaxDecimalPlaces("limit", p.Limit, 1),
	)
}

// ActiveChargingProfile is the profile currently in force on a session.
type ActiveChargingProfile struct {
	StartDateTime   string          `json:"start_date_time"`
	ChargingProfile ChargingProfile `json:"charging_profile"`
}

func (p ActiveChargingProfile) Validate() error {
	return validator.Join(
		validator.Apply(validator.OcpiDateTime("start_date_time", p.StartDateTime)),
		validator.Nested("charging_profile", p.ChargingProfile),
	)
}

// SetChargingProfile is the request body to put a new profile on a session.
type SetChargingProfile struct {
	ChargingProfile ChargingProfile `json:"charging_profile"`
	ResponseURL     string          `json:"response_url"`
}

func (s SetChargingProfile) Validate() error {
	return validator.Join(
		validator.Nested("charging_profile", s.ChargingProfile),
		validator.Apply(validator.ValidURL("response_url", s.ResponseURL)),
	)
}
