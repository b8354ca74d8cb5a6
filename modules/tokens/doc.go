// Package tokens contains the objects of the OCPI 2.2.1 Tokens module:
// Token, the AuthorizationInfo returned by real-time authorization, and
// the LocationReferences and EnergyContract objects they carry.
package tokens
