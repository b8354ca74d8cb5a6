package versions

import "slices"

// InterfaceRole tells which side of a module interface an endpoint implements.
type InterfaceRole string

const (
	InterfaceSender   InterfaceRole = "SENDER"
	InterfaceReceiver InterfaceRole = "RECEIVER"
)

var interfaceRoleValues = []InterfaceRole{InterfaceSender, InterfaceReceiver}

func (v InterfaceRole) IsValid() bool { return slices.Contains(interfaceRoleValues, v) }

// InterfaceRoleValues returns all values in declaration order.
func InterfaceRoleValues() []InterfaceRole { return slices.Clone(interfaceRoleValues) }

// ModuleID identifies an OCPI module in an endpoint list. Values are lowercase on the wire.
type ModuleID string

const (
	ModuleCDRs             ModuleID = "cdrs"
	ModuleChargingProfiles ModuleID = "chargingprofiles"
	ModuleCommands         ModuleID = "commands"
	ModuleCredentials      ModuleID = "credentials"
	ModuleHubClientInfo    ModuleID = "hubclientinfo"
	ModuleLocations        ModuleID = "locations"
	ModuleSessions         ModuleID = "sessions"
	ModuleTariffs          ModuleID = "tariffs"
	ModuleTokens           ModuleID = "tokens"
)

var moduleIDValues = []ModuleID{
	ModuleCDRs,
	ModuleChargingProfiles,
	ModuleCommands,
	ModuleCredentials,
	ModuleHubClientInfo,
	ModuleLocations,
	ModuleSessions,
	ModuleTariffs,
	ModuleTokens,
}

func (v ModuleID) IsValid() bool { return slices.Contains(moduleIDValues, v) }

// ModuleIDValues returns all values in declaration order.
func ModuleIDValues() []ModuleID { return slices.Clone(moduleIDValues) }

// VersionNumber is a published OCPI version.
type VersionNumber string

const (
	Version20  VersionNumber = "2.0"
	Version21  VersionNumber = "2.1"
	Version211 VersionNumber = "2.1.1"
	Version22  VersionNumber = "2.2"
	Version221 VersionNumber = "2.2.1"
)

var versionNumberValues = []VersionNumber{Version20, Version21, Version211, Version22, Version221}

func (v VersionNumber) IsValid() bool { return slices.Contains(versionNumberValues, v) }

// VersionNumberValues returns all values in declaration order.
func VersionNumberValues() []VersionNumber { return slices.Clone(versionNumberValues) }
