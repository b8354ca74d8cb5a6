package locations

import (
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Hours are the opening times of a location.
// Without twentyfourseven at least one regular_hours entry is required.
type Hours struct {
	TwentyFourSeven     bool                `json:"twentyfourseven"`
	RegularHours        []RegularHours      `json:"regular_hours,omitempty"`
	ExceptionalOpenings []ExceptionalPeriod `json:"exceptional_openings,omitempty"`
	ExceptionalClosings []ExceptionalPeriod `json:"exceptional_closings,omitempty"`
}

func (h Hours) Validate() error {
	rule := validator.MinItems("regular_hours", h.RegularHours, 1)
	rule.Error.Message = "must contain at least one RegularHours object when twentyfourseven is false"
	rule.Error.TranslationKey = "validation.regular_hours_required"

	return validator.Join(
		validator.Apply(validator.When(!h.TwentyFourSeven, rule)),
		validator.NestedEach("regular_hours", h.RegularHours),
		validator.NestedEach("exceptional_openings", h.ExceptionalOpenings),
		validator.NestedEach("exceptional_closings", h.ExceptionalClosings),
	)
}

// RegularHours is a weekly recurring opening period. Weekday 1 is Monday.
type RegularHours struct {
	Weekday     int    `json:"weekday"`
	PeriodBegin string `json:"period_begin"`
	PeriodEnd   string `json:"period_end"`
}

func (r RegularHours) Validate() error {
	return validator.Apply(
		validator.Between("weekday", r.Weekday, 1, 7),
		validator.TimeOfDay("period_begin", r.PeriodBegin),
		validator.TimeOfDay("period_end", r.PeriodEnd),
	)
}

// ExceptionalPeriod is a one-off opening or closing.
type ExceptionalPeriod struct {
	PeriodBegin string `json:"period_begin"`
	PeriodEnd   string `json:"period_end"`
}

func (p ExceptionalPeriod) Validate() error {
	return validator.Apply(
		validator.OcpiDateTime("period_begin", p.PeriodBegin),
		validator.OcpiDateTime("period_end", p.PeriodEnd),
	)
}
