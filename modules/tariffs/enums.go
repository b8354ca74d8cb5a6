package tariffs

import "slices"

// DayOfWeek is used in tariff restrictions.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var dayOfWeekValues = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (v DayOfWeek) IsValid() bool { return slices.Contains(dayOfWeekValues, v) }

// DayOfWeekValues returns all values in declaration order.
func DayOfWeekValues() []DayOfWeek { return slices.Clone(dayOfWeekValues) }

// ReservationRestrictionType marks a tariff element as applying to reservations.
type ReservationRestrictionType string

const (
	Reservation        ReservationRestrictionType = "RESERVATION"
	ReservationExpires ReservationRestrictionType = "RESERVATION_EXPIRES"
)

var reservationRestrictionTypeValues = []ReservationRestrictionType{Reservation, ReservationExpires}

func (v ReservationRestrictionType) IsValid() bool { return slices.Contains(reservationRestrictionTypeValues, v) }

// ReservationRestrictionTypeValues returns all values in declaration order.
func ReservationRestrictionTypeValues() []ReservationRestrictionType { return slices.Clone(reservationRestrictionTypeValues) }

// TariffDimensionType is what a price component is billed on.
type TariffDimensionType string

const (
	DimensionEnergy      TariffDimensionType = "ENERGY"
	DimensionFlat        TariffDimensionType = "FLAT"
	DimensionParkingTime TariffDimensionType = "PARKING_TIME"
	DimensionTime        TariffDimensionType = "TIME"
)

var tariffDimensionTypeValues = []TariffDimensionType{DimensionEnergy, DimensionFlat, DimensionParkingTime, DimensionTime}

func (v TariffDimensionType) IsValid() bool { return slices.Contains(tariffDimensionTypeValues, v) }

// TariffDimensionTypeValues returns all values in declaration order.
func TariffDimensionTypeValues() []TariffDimensionType { return slices.Clone(tariffDimensionTypeValues) }

// TariffType distinguishes tariffs by the charging preference they serve.
type TariffType string

const (
	TariffTypeAdHocPayment TariffType = "AD_HOC_PAYMENT"
	TariffTypeProfileCheap TariffType = "PROFILE_CHEAP"
	TariffTypeProfileFast  TariffType = "PROFILE_FAST"
	TariffTypeProfileGreen TariffType = "PROFILE_GREEN"
	TariffTypeRegular      TariffType = "REGULAR"
)

var tariffTypeValues = []TariffType{
	TariffTypeAdHocPayment,
	TariffTypeProfileCheap,
	TariffTypeProfileFast,
	TariffTypeProfileGreen,
	TariffTypeRegular,
}

func (v TariffType) IsValid() bool { return slices.Contains(tariffTypeValues, v) }

// TariffTypeValues returns all values in declaration order.
func TariffTypeValues() []TariffType { return slices.Clone(tariffTypeValues) }
