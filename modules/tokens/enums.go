package tokens

import "slices"

// AllowedType is the authorization outcome for a token.
type AllowedType string

const (
	AllowedAllowed    AllowedType = "ALLOWED"
	AllowedBlocked    AllowedType = "BLOCKED"
	AllowedExpired    AllowedType = "EXPIRED"
	AllowedNoCredit   AllowedType = "NO_CREDIT"
	AllowedNotAllowed AllowedType = "NOT_ALLOWED"
)

var allowedTypeValues = []AllowedType{AllowedAllowed, AllowedBlocked, AllowedExpired, AllowedNoCredit, AllowedNotAllowed}

func (v AllowedType) IsValid() bool { return slices.Contains(allowedTypeValues, v) }

// AllowedTypeValues returns all values in declaration order.
func AllowedTypeValues() []AllowedType { return slices.Clone(allowedTypeValues) }

// TokenType is the kind of token used to start a session.
type TokenType string

const (
	TokenTypeAdHocUser TokenType = "AD_HOC_USER"
	TokenTypeAppUser   TokenType = "APP_USER"
	TokenTypeOther     TokenType = "OTHER"
	TokenTypeRFID      TokenType = "RFID"
)

var tokenTypeValues = []TokenType{TokenTypeAdHocUser, TokenTypeAppUser, TokenTypeOther, TokenTypeRFID}

func (v TokenType) IsValid() bool { return slices.Contains(tokenTypeValues, v) }

// TokenTypeValues returns all values in declaration order.
func TokenTypeValues() []TokenType { return slices.Clone(tokenTypeValues) }

// WhitelistType tells the CPO when a token may be used without real-time authorization.
type WhitelistType string

const (
	WhitelistAlways         WhitelistType = "ALWAYS"
	WhitelistAllowed        WhitelistType = "ALLOWED"
	WhitelistAllowedOffline WhitelistType = "ALLOWED_OFFLINE"
	WhitelistNever          WhitelistType = "NEVER"
)

var whitelistTypeValues = []WhitelistType{WhitelistAlways, WhitelistAllowed, WhitelistAllowedOffline, WhitelistNever}

func (v WhitelistType) IsValid() bool { return slices.Contains(whitelistTypeValues, v) }

// WhitelistTypeValues returns all values in declaration order.
func WhitelistTypeValues() []WhitelistType { return slices.Clone(whitelistTypeValues) }

// ProfileType is a charging preference a driver can ask for.
type ProfileType string

const (
	ProfileCheap   ProfileType = "CHEAP"
	ProfileFast    ProfileType = "FAST"
	ProfileGreen   ProfileType = "GREEN"
	ProfileRegular ProfileType = "REGULAR"
)

var profileTypeValues = []ProfileType{ProfileCheap, ProfileFast, ProfileGreen, ProfileRegular}

func (v ProfileType) IsValid() bool { return slices.Contains(profileTypeValues, v) }

// ProfileTypeValues returns all values in declaration order.
func ProfileTypeValues() []ProfileType { return slices.Clone(profileTypeValues) }
