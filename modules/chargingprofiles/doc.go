// Package chargingprofiles contains the objects of the OCPI 2.2.1
// ChargingProfiles module used for smart charging.
package chargingprofiles
