// Package sessions contains the objects of the OCPI 2.2.1 Sessions module:
// the Session a CPO reports while charging is ongoing and the
// ChargingPreferences a driver can set on it.
package sessions
