package cdrs

import "slices"

// AuthMethod is how a session was authorized.
type AuthMethod string

const (
	AuthMethodAuthRequest AuthMethod = "AUTH_REQUEST"
	AuthMethodCommand     AuthMethod = "COMMAND"
	AuthMethodWhitelist   AuthMethod = "WHITELIST"
)

var authMethodValues = []AuthMethod{AuthMethodAuthRequest, AuthMethodCommand, AuthMethodWhitelist}

func (v AuthMethod) IsValid() bool { return slices.Contains(authMethodValues, v) }

// AuthMethodValues returns all values in declaration order.
func AuthMethodValues() []AuthMethod { return slices.Clone(authMethodValues) }

// CdrDimensionType is the quantity a CdrDimension measures.
type CdrDimensionType string

const (
	DimensionCurrent         CdrDimensionType = "CURRENT"
	DimensionEnergy          CdrDimensionType = "ENERGY"
	DimensionEnergyExport    CdrDimensionType = "ENERGY_EXPORT"
	DimensionEnergyImport    CdrDimensionType = "ENERGY_IMPORT"
	DimensionMaxCurrent      CdrDimensionType = "MAX_CURRENT"
	DimensionMinCurrent      CdrDimensionType = "MIN_CURRENT"
	DimensionMaxPower        CdrDimensionType = "MAX_POWER"
	DimensionMinPower        CdrDimensionType = "MIN_POWER"
	DimensionParkingTime     CdrDimensionType = "PARKING_TIME"
	DimensionPower           CdrDimensionType = "POWER"
	DimensionReservationTime CdrDimensionType = "RESERVATION_TIME"
	DimensionStateOfCharge   CdrDimensionType = "STATE_OF_CHARGE"
	DimensionTime            CdrDimensionType = "TIME"
)

var cdrDimensionTypeValues = []CdrDimensionType{
	DimensionCurrent,
	DimensionEnergy,
	DimensionEnergyExport,
	DimensionEnergyImport,
	DimensionMaxCurrent,
	DimensionMinCurrent,
	DimensionMaxPower,
	DimensionMinPower,
	DimensionParkingTime,
	DimensionPower,
	DimensionReservationTime,
	DimensionStateOfCharge,
	DimensionTime,
}

func (v CdrDimensionType) IsValid() bool { return slices.Contains(cdrDimensionTypeValues, v) }

// CdrDimensionTypeValues returns all values in declaration order.
func CdrDimensionTypeValues() []CdrDimensionType { return slices.Clone(cdrDimensionTypeValues) }
