package payload

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/ocpi/modules/cdrs"
	"github.com/dmitrymomot/ocpi/modules/chargingprofiles"
	"github.com/dmitrymomot/ocpi/modules/commands"
	"github.com/dmitrymomot/ocpi/modules/credentials"
	"github.com/dmitrymomot/ocpi/modules/hubclientinfo"
	"github.com/dmitrymomot/ocpi/modules/locations"
	"github.com/dmitrymomot/ocpi/modules/sessions"
	"github.com/dmitrymomot/ocpi/modules/tariffs"
	"github.com/dmitrymomot/ocpi/modules/tokens"
	"github.com/dmitrymomot/ocpi/modules/versions"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Kind names an OCPI object type and knows how to allocate it.
type Kind struct {
	Name   string
	// Module is the OCPI module the object belongs to; empty for the
	// version information endpoints.
	Module versions.ModuleID
	new    func() validator.Validatable
}

// New returns a pointer to a zero object of this kind.
func (k Kind) New() validator.Validatable {
	return k.new()
}

func kind[T any, P interface {
	*T
	validator.Validatable
}](name string, module versions.ModuleID) Kind {
	return Kind{
		Name:   name,
		Module: module,
		new:    func() validator.Validatable { return P(new(T)) },
	}
}

var kinds = []Kind{
	kind[locations.Location]("location", versions.ModuleLocations),
	kind[locations.EVSE]("evse", versions.ModuleLocations),
	kind[locations.Connector]("connector", versions.ModuleLocations),

	kind[sessions.Session]("session", versions.ModuleSessions),
	kind[sessions.ChargingPreferences]("charging_preferences", versions.ModuleSessions),

	kind[cdrs.CDR]("cdr", versions.ModuleCDRs),

	kind[tariffs.Tariff]("tariff", versions.ModuleTariffs),

	kind[tokens.Token]("token", versions.ModuleTokens),
	kind[tokens.AuthorizationInfo]("authorization_info", versions.ModuleTokens),
	kind[tokens.LocationReferences]("location_references", versions.ModuleTokens),

	kind[commands.CancelReservation]("cancel_reservation", versions.ModuleCommands),
	kind[commands.ReserveNow]("reserve_now", versions.ModuleCommands),
	kind[commands.StartSession]("start_session", versions.ModuleCommands),
	kind[commands.StopSession]("stop_session", versions.ModuleCommands),
	kind[commands.UnlockConnector]("unlock_connector", versions.ModuleCommands),
	kind[commands.CommandResponse]("command_response", versions.ModuleCommands),
	kind[commands.CommandResult]("command_result", versions.ModuleCommands),

	kind[chargingprofiles.ChargingProfile]("charging_profile", versions.ModuleChargingProfiles),
	kind[chargingprofiles.ActiveChargingProfile]("active_charging_profile", versions.ModuleChargingProfiles),
	kind[chargingprofiles.SetChargingProfile]("set_charging_profile", versions.ModuleChargingProfiles),
	kind[chargingprofiles.ChargingProfileResponse]("charging_profile_response", versions.ModuleChargingProfiles),
	kind[chargingprofiles.ActiveChargingProfileResult]("active_charging_profile_result", versions.ModuleChargingProfiles),
	kind[chargingprofiles.ChargingProfileResult]("charging_profile_result", versions.ModuleChargingProfiles),
	kind[chargingprofiles.ClearProfileResult]("clear_profile_result", versions.ModuleChargingProfiles),

	kind[credentials.Credentials]("credentials", versions.ModuleCredentials),

	kind[hubclientinfo.ClientInfo]("client_info", versions.ModuleHubClientInfo),

	kind[versions.Version]("version", ""),
	kind[versions.VersionDetails]("version_details", ""),
	kind[versions.Endpoint]("endpoint", ""),
}

// Kinds returns every supported kind ordered by name.
func Kinds() []Kind {
	out := slices.Clone(kinds)
	slices.SortFunc(out, func(a, b Kind) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Names returns the sorted kind names.
func Names() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range Kinds() {
		names = append(names, k.Name)
	}
	return names
}

// Lookup finds a kind by name. Hyphens are accepted in place of underscores.
func Lookup(name string) (Kind, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	i := slices.IndexFunc(kinds, func(k Kind) bool { return k.Name == name })
	if i < 0 {
		return Kind{}, false
	}
	return kinds[i], true
}
