package locations

import "slices"

// Capability is a feature an EVSE offers.
type Capability string

const (
	CapabilityChargingProfileCapable        Capability = "CHARGING_PROFILE_CAPABLE"
	CapabilityChargingPreferencesCapable    Capability = "CHARGING_PREFERENCES_CAPABLE"
	CapabilityChipCardSupport               Capability = "CHIP_CARD_SUPPORT"
	CapabilityContactlessCardSupport        Capability = "CONTACTLESS_CARD_SUPPORT"
	CapabilityCreditCardPayable             Capability = "CREDIT_CARD_PAYABLE"
	CapabilityDebitCardPayable              Capability = "DEBIT_CARD_PAYABLE"
	CapabilityPEDTerminal                   Capability = "PED_TERMINAL"
	CapabilityRemoteStartStopCapable        Capability = "REMOTE_START_STOP_CAPABLE"
	CapabilityReservable                    Capability = "RESERVABLE"
	CapabilityRFIDReader                    Capability = "RFID_READER"
	CapabilityStartSessionConnectorRequired Capability = "START_SESSION_CONNECTOR_REQUIRED"
	CapabilityTokenGroupCapable             Capability = "TOKEN_GROUP_CAPABLE"
	CapabilityUnlockCapable                 Capability = "UNLOCK_CAPABLE"
)

var capabilityValues = []Capability{
	CapabilityChargingProfileCapable,
	CapabilityChargingPreferencesCapable,
	CapabilityChipCardSupport,
	CapabilityContactlessCardSupport,
	CapabilityCreditCardPayable,
	CapabilityDebitCardPayable,
	CapabilityPEDTerminal,
	CapabilityRemoteStartStopCapable,
	CapabilityReservable,
	CapabilityRFIDReader,
	CapabilityStartSessionConnectorRequired,
	CapabilityTokenGroupCapable,
	CapabilityUnlockCapable,
}

func (v Capability) IsValid() bool { return slices.Contains(capabilityValues, v) }

// CapabilityValues returns all values in declaration order.
func CapabilityValues() []Capability { return slices.Clone(capabilityValues) }

// ConnectorFormat tells whether the driver brings a cable.
type ConnectorFormat string

const (
	ConnectorFormatSocket ConnectorFormat = "SOCKET"
	ConnectorFormatCable  ConnectorFormat = "CABLE"
)

var connectorFormatValues = []ConnectorFormat{ConnectorFormatSocket, ConnectorFormatCable}

func (v ConnectorFormat) IsValid() bool { return slices.Contains(connectorFormatValues, v) }

// ConnectorFormatValues returns all values in declaration order.
func ConnectorFormatValues() []ConnectorFormat { return slices.Clone(connectorFormatValues) }

// ConnectorType is the plug or socket standard of a connector.
type ConnectorType string

const (
	ConnectorChademo            ConnectorType = "CHADEMO"
	ConnectorChaoji             ConnectorType = "CHAOJI"
	ConnectorDomesticA          ConnectorType = "DOMESTIC_A"
	ConnectorDomesticB          ConnectorType = "DOMESTIC_B"
	ConnectorDomesticC          ConnectorType = "DOMESTIC_C"
	ConnectorDomesticD          ConnectorType = "DOMESTIC_D"
	ConnectorDomesticE          ConnectorType = "DOMESTIC_E"
	ConnectorDomesticF          ConnectorType = "DOMESTIC_F"
	ConnectorDomesticG          ConnectorType = "DOMESTIC_G"
	ConnectorDomesticH          ConnectorType = "DOMESTIC_H"
	ConnectorDomesticI          ConnectorType = "DOMESTIC_I"
	ConnectorDomesticJ          ConnectorType = "DOMESTIC_J"
	ConnectorDomesticK          ConnectorType = "DOMESTIC_K"
	ConnectorDomesticL          ConnectorType = "DOMESTIC_L"
	ConnectorDomesticM          ConnectorType = "DOMESTIC_M"
	ConnectorDomesticN          ConnectorType = "DOMESTIC_N"
	ConnectorDomesticO          ConnectorType = "DOMESTIC_O"
	ConnectorGBTAC              ConnectorType = "GBT_AC"
	ConnectorGBTDC              ConnectorType = "GBT_DC"
	ConnectorIEC60309Single16   ConnectorType = "IEC_60309_2_single_16"
	ConnectorIEC60309Three16    ConnectorType = "IEC_60309_2_three_16"
	ConnectorIEC60309Three32    ConnectorType = "IEC_60309_2_three_32"
	ConnectorIEC60309Three64    ConnectorType = "IEC_60309_2_three_64"
	ConnectorIEC62196T1         ConnectorType = "IEC_62196_T1"
	ConnectorIEC62196T1Combo    ConnectorType = "IEC_62196_T1_COMBO"
	ConnectorIEC62196T2         ConnectorType = "IEC_62196_T2"
	ConnectorIEC62196T2Combo    ConnectorType = "IEC_62196_T2_COMBO"
	ConnectorIEC62196T3A        ConnectorType = "IEC_62196_T3A"
	ConnectorIEC62196T3C        ConnectorType = "IEC_62196_T3C"
	ConnectorNEMA5x20           ConnectorType = "NEMA_5_20"
	ConnectorNEMA6x30           ConnectorType = "NEMA_6_30"
	ConnectorNEMA6x50           ConnectorType = "NEMA_6_50"
	ConnectorNEMA10x30          ConnectorType = "NEMA_10_30"
	ConnectorNEMA10x50          ConnectorType = "NEMA_10_50"
	ConnectorNEMA14x30          ConnectorType = "NEMA_14_30"
	ConnectorNEMA14x50          ConnectorType = "NEMA_14_50"
	ConnectorPantographBottomUp ConnectorType = "PANTOGRAPH_BOTTOM_UP"
	ConnectorPantographTopDown  ConnectorType = "PANTOGRAPH_TOP_DOWN"
	ConnectorTeslaR             ConnectorType = "TESLA_R"
	ConnectorTeslaS             ConnectorType = "TESLA_S"
)

var connectorTypeValues = []ConnectorType{
	ConnectorChademo,
	ConnectorChaoji,
	ConnectorDomesticA,
	ConnectorDomesticB,
	ConnectorDomesticC,
	ConnectorDomesticD,
	ConnectorDomesticE,
	ConnectorDomesticF,
	ConnectorDomesticG,
	ConnectorDomesticH,
	ConnectorDomesticI,
	ConnectorDomesticJ,
	ConnectorDomesticK,
	ConnectorDomesticL,
	ConnectorDomesticM,
	ConnectorDomesticN,
	ConnectorDomesticO,
	ConnectorGBTAC,
	ConnectorGBTDC,
	ConnectorIEC60309Single16,
	ConnectorIEC60309Three16,
	ConnectorIEC60309Three32,
	ConnectorIEC60309Three64,
	ConnectorIEC62196T1,
	ConnectorIEC62196T1Combo,
	ConnectorIEC62196T2,
	ConnectorIEC62196T2Combo,
	ConnectorIEC62196T3A,
	ConnectorIEC62196T3C,
	ConnectorNEMA5x20,
	ConnectorNEMA6x30,
	ConnectorNEMA6x50,
	ConnectorNEMA10x30,
	ConnectorNEMA10x50,
	ConnectorNEMA14x30,
	ConnectorNEMA14x50,
	ConnectorPantographBottomUp,
	ConnectorPantographTopDown,
	ConnectorTeslaR,
	ConnectorTeslaS,
}

func (v ConnectorType) IsValid() bool { return slices.Contains(connectorTypeValues, v) }

// ConnectorTypeValues returns all values in declaration order.
func ConnectorTypeValues() []ConnectorType { return slices.Clone(connectorTypeValues) }

// EnergySourceCategory is a primary energy source.
type EnergySourceCategory string

const (
	EnergySourceNuclear       EnergySourceCategory = "NUCLEAR"
	EnergySourceGeneralFossil EnergySourceCategory = "GENERAL_FOSSIL"
	EnergySourceCoal          EnergySourceCategory = "COAL"
	EnergySourceGas           EnergySourceCategory = "GAS"
	EnergySourceGeneralGreen  EnergySourceCategory = "GENERAL_GREEN"
	EnergySourceSolar         EnergySourceCategory = "SOLAR"
	EnergySourceWind          EnergySourceCategory = "WIND"
	EnergySourceWater         EnergySourceCategory = "WATER"
)

var energySourceCategoryValues = []EnergySourceCategory{
	EnergySourceNuclear,
	EnergySourceGeneralFossil,
	EnergySourceCoal,
	EnergySourceGas,
	EnergySourceGeneralGreen,
	EnergySourceSolar,
	EnergySourceWind,
	EnergySourceWater,
}

func (v EnergySourceCategory) IsValid() bool { return slices.Contains(energySourceCategoryValues, v) }

// EnergySourceCategoryValues returns all values in declaration order.
func EnergySourceCategoryValues() []EnergySourceCategory { return slices.Clone(energySourceCategoryValues) }

// EnvironmentalImpactCategory is a kind of environmental impact.
type EnvironmentalImpactCategory string

const (
	ImpactNuclearWaste  EnvironmentalImpactCategory = "NUCLEAR_WASTE"
	ImpactCarbonDioxide EnvironmentalImpactCategory = "CARBON_DIOXIDE"
)

var environmentalImpactCategoryValues = []EnvironmentalImpactCategory{ImpactNuclearWaste, ImpactCarbonDioxide}

func (v EnvironmentalImpactCategory) IsValid() bool { return slices.Contains(environmentalImpactCategoryValues, v) }

// EnvironmentalImpactCategoryValues returns all values in declaration order.
func EnvironmentalImpactCategoryValues() []EnvironmentalImpactCategory { return slices.Clone(environmentalImpactCategoryValues) }

// Facility is a service available near a location.
type Facility string

const (
	FacilityHotel          Facility = "HOTEL"
	FacilityRestaurant     Facility = "RESTAURANT"
	FacilityCafe           Facility = "CAFE"
	FacilityMall           Facility = "MALL"
	FacilitySupermarket    Facility = "SUPERMARKET"
	FacilitySport          Facility = "SPORT"
	FacilityRecreationArea Facility = "RECREATION_AREA"
	FacilityNature         Facility = "NATURE"
	FacilityMuseum         Facility = "MUSEUM"
	FacilityBikeSharing    Facility = "BIKE_SHARING"
	FacilityBusStop        Facility = "BUS_STOP"
	FacilityTaxiStand      Facility = "TAXI_STAND"
	FacilityTramStop       Facility = "TRAM_STOP"
	FacilityMetroStation   Facility = "METRO_STATION"
	FacilityTrainStation   Facility = "TRAIN_STATION"
	FacilityAirport        Facility = "AIRPORT"
	FacilityParkingLot     Facility = "PARKING_LOT"
	FacilityCarpoolParking Facility = "CARPOOL_PARKING"
	FacilityFuelStation    Facility = "FUEL_STATION"
	FacilityWiFi           Facility = "WIFI"
)

var facilityValues = []Facility{
	FacilityHotel,
	FacilityRestaurant,
	FacilityCafe,
	FacilityMall,
	FacilitySupermarket,
	FacilitySport,
	FacilityRecreationArea,
	FacilityNature,
	FacilityMuseum,
	FacilityBikeSharing,
	FacilityBusStop,
	FacilityTaxiStand,
	FacilityTramStop,
	FacilityMetroStation,
	FacilityTrainStation,
	FacilityAirport,
	FacilityParkingLot,
	FacilityCarpoolParking,
	FacilityFuelStation,
	FacilityWiFi,
}

func (v Facility) IsValid() bool { return slices.Contains(facilityValues, v) }

// FacilityValues returns all values in declaration order.
func FacilityValues() []Facility { return slices.Clone(facilityValues) }

// ImageCategory describes what an image shows.
type ImageCategory string

const (
	ImageCharger  ImageCategory = "CHARGER"
	ImageEntrance ImageCategory = "ENTRANCE"
	ImageLocation ImageCategory = "LOCATION"
	ImageNetwork  ImageCategory = "NETWORK"
	ImageOperator ImageCategory = "OPERATOR"
	ImageOther    ImageCategory = "OTHER"
	ImageOwner    ImageCategory = "OWNER"
)

var imageCategoryValues = []ImageCategory{
	ImageCharger,
	ImageEntrance,
	ImageLocation,
	ImageNetwork,
	ImageOperator,
	ImageOther,
	ImageOwner,
}

func (v ImageCategory) IsValid() bool { return slices.Contains(imageCategoryValues, v) }

// ImageCategoryValues returns all values in declaration order.
func ImageCategoryValues() []ImageCategory { return slices.Clone(imageCategoryValues) }

// ParkingRestriction limits who may park at an EVSE.
type ParkingRestriction string

const (
	RestrictionEVOnly      ParkingRestriction = "EV_ONLY"
	RestrictionPlugged     ParkingRestriction = "PLUGGED"
	RestrictionDisabled    ParkingRestriction = "DISABLED"
	RestrictionCustomers   ParkingRestriction = "CUSTOMERS"
	RestrictionMotorcycles ParkingRestriction = "MOTORCYCLES"
)

var parkingRestrictionValues = []ParkingRestriction{RestrictionEVOnly, RestrictionPlugged, RestrictionDisabled, RestrictionCustomers, RestrictionMotorcycles}

func (v ParkingRestriction) IsValid() bool { return slices.Contains(parkingRestrictionValues, v) }

// ParkingRestrictionValues returns all values in declaration order.
func ParkingRestrictionValues() []ParkingRestriction { return slices.Clone(parkingRestrictionValues) }

// ParkingType is the general type of parking at a location.
type ParkingType string

const (
	ParkingAlongMotorway     ParkingType = "ALONG_MOTORWAY"
	ParkingGarage            ParkingType = "PARKING_GARAGE"
	ParkingLot               ParkingType = "PARKING_LOT"
	ParkingOnDriveway        ParkingType = "ON_DRIVEWAY"
	ParkingOnStreet          ParkingType = "ON_STREET"
	ParkingUndergroundGarage ParkingType = "UNDERGROUND_GARAGE"
)

var parkingTypeValues = []ParkingType{
	ParkingAlongMotorway,
	ParkingGarage,
	ParkingLot,
	ParkingOnDriveway,
	ParkingOnStreet,
	ParkingUndergroundGarage,
}

func (v ParkingType) IsValid() bool { return slices.Contains(parkingTypeValues, v) }

// ParkingTypeValues returns all values in declaration order.
func ParkingTypeValues() []ParkingType { return slices.Clone(parkingTypeValues) }

// PowerType is the current type delivered by a connector.
type PowerType string

const (
	PowerTypeAC1Phase      PowerType = "AC_1_PHASE"
	PowerTypeAC2Phase      PowerType = "AC_2_PHASE"
	PowerTypeAC2PhaseSplit PowerType = "AC_2_PHASE_SPLIT"
	PowerTypeAC3Phase      PowerType = "AC_3_PHASE"
	PowerTypeDC            PowerType = "DC"
)

var powerTypeValues = []PowerType{PowerTypeAC1Phase, PowerTypeAC2Phase, PowerTypeAC2PhaseSplit, PowerTypeAC3Phase, PowerTypeDC}

func (v PowerType) IsValid() bool { return slices.Contains(powerTypeValues, v) }

// PowerTypeValues returns all values in declaration order.
func PowerTypeValues() []PowerType { return slices.Clone(powerTypeValues) }

// Status is the current state of an EVSE.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusBlocked     Status = "BLOCKED"
	StatusCharging    Status = "CHARGING"
	StatusInoperative Status = "INOPERATIVE"
	StatusOutOfOrder  Status = "OUTOFORDER"
	StatusPlanned     Status = "PLANNED"
	StatusRemoved     Status = "REMOVED"
	StatusReserved    Status = "RESERVED"
	StatusUnknown     Status = "UNKNOWN"
)

var statusValues = []Status{
	StatusAvailable,
	StatusBlocked,
	StatusCharging,
	StatusInoperative,
	StatusOutOfOrder,
	StatusPlanned,
	StatusRemoved,
	StatusReserved,
	StatusUnknown,
}

func (v Status) IsValid() bool { return slices.Contains(statusValues, v) }

// StatusValues returns all values in declaration order.
func StatusValues() []Status { return slices.Clone(statusValues) }
