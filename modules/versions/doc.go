// Package versions contains the objects of the OCPI version discovery
// endpoints: the list of supported versions and, per version, the module
// endpoints.
package versions
