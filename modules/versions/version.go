package versions

import (
	"cmp"
	"slices"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Version points to the details endpoint of one supported version.
type Version struct {
	Version VersionNumber `json:"version"`
	URL     string        `json:"url"`
}

func (v Version) Validate() error {
	return validator.Apply(
		validator.OneOf("version", v.Version),
		validator.ValidURL("url", v.URL),
	)
}

// VersionDetails lists the module endpoints of one version.
type VersionDetails struct {
	Version   VersionNumber `json:"version"`
	Endpoints []Endpoint    `json:"endpoints"`
}

func (d VersionDetails) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.OneOf("version", d.Version),
			validator.MinItems("endpoints", d.Endpoints, 1),
		),
		validator.NestedEach("endpoints", d.Endpoints),
	)
}

// Endpoint returns the endpoint implementing module in the given role.
func (d VersionDetails) Endpoint(module ModuleID, role InterfaceRole) (Endpoint, bool) {
	i := slices.IndexFunc(d.Endpoints, func(e Endpoint) bool {
		return e.Identifier == module && e.Role == role
	})
	if i < 0 {
		return Endpoint{}, false
	}
	return d.Endpoints[i], true
}

// Endpoint is the URL of one module interface.
type Endpoint struct {
	Identifier ModuleID      `json:"identifier"`
	Role       InterfaceRole `json:"role"`
	URL        string        `json:"url"`
}

func (e Endpoint) Validate() error {
	return validator.Apply(
		validator.OneOf("identifier", e.Identifier),
		validator.OneOf("role", e.Role),
		validator.ValidURL("url", e.URL),
	)
}

// Latest picks the highest version present in both lists and returns the
// peer's entry for it, so the URL points at the peer.
func Latest(ours, theirs []Version) (Version, bool) {
	var (
		best  Version
		found bool
	)
	for _, v := range theirs {
		if !slices.ContainsFunc(ours, func(o Version) bool { return o.Version == v.Version }) {
			continue
		}
		if !found || v.Version.Compare(best.Version) > 0 {
			best, found = v, true
		}
	}
	return best, found
}

// Compare orders versions by their position in the published sequence.
// Unknown versions sort before all known ones.
func (v VersionNumber) Compare(other VersionNumber) int {
	return cmp.Compare(slices.Index(versionNumberValues, v), slices.Index(versionNumberValues, other))
}
