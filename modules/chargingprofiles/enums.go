package chargingprofiles

import "slices"

// ChargingProfileResponseType is the synchronous answer to a charging profile request.
type ChargingProfileResponseType string

const (
	ResponseAccepted       ChargingProfileResponseType = "ACCEPTED"
	ResponseNotSupported   ChargingProfileResponseType = "NOT_SUPPORTED"
	ResponseRejected       ChargingProfileResponseType = "REJECTED"
	ResponseTooOften       ChargingProfileResponseType = "TOO_OFTEN"
	ResponseUnknownSession ChargingProfileResponseType = "UNKNOWN_SESSION"
)

var chargingProfileResponseTypeValues = []ChargingProfileResponseType{
	ResponseAccepted,
	ResponseNotSupported,
	ResponseRejected,
	ResponseTooOften,
	ResponseUnknownSession,
}

func (v ChargingProfileResponseType) IsValid() bool { return slices.Contains(chargingProfileResponseTypeValues, v) }

// ChargingProfileResponseTypeValues returns all values in declaration order.
func ChargingProfileResponseTypeValues() []ChargingProfileResponseType { return slices.Clone(chargingProfileResponseTypeValues) }

// ChargingProfileResultType is the asynchronous outcome of a charging profile request.
type ChargingProfileResultType string

const (
	ResultAccepted ChargingProfileResultType = "ACCEPTED"
	ResultRejected ChargingProfileResultType = "REJECTED"
	ResultUnknown  ChargingProfileResultType = "UNKNOWN"
)

var chargingProfileResultTypeValues = []ChargingProfileResultType{ResultAccepted, ResultRejected, ResultUnknown}

func (v ChargingProfileResultType) IsValid() bool { return slices.Contains(chargingProfileResultTypeValues, v) }

// ChargingProfileResultTypeValues returns all values in declaration order.
func ChargingProfileResultTypeValues() []ChargingProfileResultType { return slices.Clone(chargingProfileResultTypeValues) }

// ChargingRateUnit is the unit of a charging profile limit: watts or amperes.
type ChargingRateUnit string

const (
	RateUnitWatts   ChargingRateUnit = "W"
	RateUnitAmperes ChargingRateUnit = "A"
)

var chargingRateUnitValues = []ChargingRateUnit{RateUnitWatts, RateUnitAmperes}

func (v ChargingRateUnit) IsValid() bool { return slices.Contains(chargingRateUnitValues, v) }

// ChargingRateUnitValues returns all values in declaration order.
func ChargingRateUnitValues() []ChargingRateUnit { return slices.Clone(chargingRateUnitValues) }
