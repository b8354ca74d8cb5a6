// Package ocpi holds the data contracts shared by every OCPI 2.2.1 module and
// the response envelope that wraps them on the wire.
//
// The module-specific objects live in sub-packages under modules/ (locations,
// sessions, cdrs, tariffs, tokens, commands, chargingprofiles, credentials,
// hubclientinfo, versions). Every object is a plain struct with snake_case json
// tags and a Validate method that reports all field violations at once as
// validator.ValidationErrors. Field paths in those errors are the wire names,
// with nested values addressed as "evses[0].connectors[1].tariff_ids[2]".
//
// Basic usage:
//
//	var loc locations.Location
//	if err := json.Unmarshal(body, &loc); err != nil {
//		return err
//	}
//	if err := loc.Validate(); err != nil {
//		resp := ocpi.NewResponseBuilder().ValidationErrorResponse(err)
//		// resp.StatusCode == ocpi.StatusClientInvalidOrMissingParameters
//	}
//
// The three textual formats OCPI defines on top of JSON strings (CiString,
// DateTime and the HH:MM time of day) are implemented in pkg/ocpiformat.
package ocpi
