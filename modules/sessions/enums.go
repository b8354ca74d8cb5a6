package sessions

import (
	"slices"

	"github.com/dmitrymomot/ocpi/modules/tokens"
)

// ProfileType is shared with tokens, where it is the default preference of a driver.
type ProfileType = tokens.ProfileType

const (
	ProfileCheap   = tokens.ProfileCheap
	ProfileFast    = tokens.ProfileFast
	ProfileGreen   = tokens.ProfileGreen
	ProfileRegular = tokens.ProfileRegular
)

// ProfileTypeValues returns all values in declaration order.
func ProfileTypeValues() []ProfileType { return tokens.ProfileTypeValues() }

// ChargingPreferencesResponse is the CPO answer to new charging preferences.
type ChargingPreferencesResponse string

const (
	PreferencesAccepted                ChargingPreferencesResponse = "ACCEPTED"
	PreferencesDepartureRequired       ChargingPreferencesResponse = "DEPARTURE_REQUIRED"
	PreferencesEnergyNeedRequired      ChargingPreferencesResponse = "ENERGY_NEED_REQUIRED"
	PreferencesNotPossible             ChargingPreferencesResponse = "NOT_POSSIBLE"
	PreferencesProfileTypeNotSupported ChargingPreferencesResponse = "PROFILE_TYPE_NOT_SUPPORTED"
)

var chargingPreferencesResponseValues = []ChargingPreferencesResponse{
	PreferencesAccepted,
	PreferencesDepartureRequired,
	PreferencesEnergyNeedRequired,
	PreferencesNotPossible,
	PreferencesProfileTypeNotSupported,
}

func (v ChargingPreferencesResponse) IsValid() bool { return slices.Contains(chargingPreferencesResponseValues, v) }

// ChargingPreferencesResponseValues returns all values in declaration order.
func ChargingPreferencesResponseValues() []ChargingPreferencesResponse { return slices.Clone(chargingPreferencesResponseValues) }

// SessionStatus is the lifecycle state of a session.
type SessionStatus string

const (
	StatusActive      SessionStatus = "ACTIVE"
	StatusCompleted   SessionStatus = "COMPLETED"
	StatusInvalid     SessionStatus = "INVALID"
	StatusPending     SessionStatus = "PENDING"
	StatusReservation SessionStatus = "RESERVATION"
)

var sessionStatusValues = []SessionStatus{StatusActive, StatusCompleted, StatusInvalid, StatusPending, StatusReservation}

func (v SessionStatus) IsValid() bool { return slices.Contains(sessionStatusValues, v) }

// SessionStatusValues returns all values in declaration order.
func SessionStatusValues() []SessionStatus { return slices.Clone(sessionStatusValues) }
