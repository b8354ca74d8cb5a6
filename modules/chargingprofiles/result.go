package chargingprofiles

import "github.com/dmitrymomot/ocpi/pkg/validator"

// ChargingProfileResponse is returned synchronously; Timeout is in seconds.
type ChargingProfileResponse struct {
	Result  ChargingProfileResponseType `json:"result"`
	Timeout int                         `json:"timeout"`
}

func (r ChargingProfileResponse) Validate() error {
	return validator.Apply(
		validator.OneOf("result", r.Result),
		validator.Min("timeout", r.Timeout, 1),
	)
}

// ActiveChargingProfileResult answers a request for the active profile.
type ActiveChargingProfileResult struct {
	Result  ChargingProfileResultType `json:"result"`
	Profile *ActiveChargingProfile    `json:"profile,omitempty"`
}

func (r ActiveChargingProfileResult) Validate() error {
	return validator.Join(
		validator.Apply(validator.OneOf("result", r.Result)),
		validator.NestedPtr("profile", r.Profile),
	)
}

// ChargingProfileResult answers a SetChargingProfile request.
type ChargingProfileResult struct {
	Result ChargingProfileResultType `json:"result"`
}

func (r ChargingProfileResult) Validate() error {
	return validator.Apply(validator.OneOf("result", r.Result))
}

// ClearProfileResult answers a request to remove the profile from a session.
type ClearProfileResult struct {
	Result ChargingProfileResultType `json:"result"`
}

func (r ClearProfileResult) Validate() error {
	return validator.Apply(validator.OneOf("result", r.Result))
}
