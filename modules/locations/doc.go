// Package locations contains the objects of the OCPI 2.2.1 Locations module:
// a Location with its EVSEs and their Connectors, plus the supporting
// geo, business, opening hours and energy mix objects.
//
// Every object has a Validate method that checks its own fields and recurses
// into nested objects, reporting errors under wire paths such as
// "evses[0].connectors[1].max_voltage".
package locations
