// Package ocpiformat validates the three textual micro-formats that OCPI 2.2.1
// layers on top of JSON strings: CiString, DateTime and the 24-hour time of day.
//
// Every rule implements FormatRule. A rule is a zero-size value with no state,
// so the same value can be shared by any number of goroutines and returns the
// same Outcome for the same input on every call.
//
// # Two-step validation
//
// Validate accepts an untyped candidate (whatever a decoder produced) and first
// applies a type gate: only string and non-nil *string pass. The typed value is
// then handed to Check, which performs the actual format test. Code that already
// holds a string calls Check (or the IsCiString/IsDateTime/IsTimeOfDay helpers)
// directly.
//
//	out := ocpiformat.DateTimeRule{}.Validate("last_updated", v)
//	if !out.Valid {
//		return errors.New(out.Message)
//	}
//
// # Formats
//
//   - CiString: printable ASCII only (0x20-0x7E). Empty strings are valid.
//     Length limits are the caller's concern.
//   - DateTime: at most 25 characters, YYYY-MM-DDTHH:mm:ss with either up to
//     three fractional digits and an optional Z, or no fraction and an optional
//     Z or ±HH:MM offset. The date must exist in the Gregorian calendar.
//   - TimeOfDay: exactly HH:MM, 00:00 through 23:59.
//
// Rules never panic: malformed input of any type yields a negative Outcome
// carrying the rule's message with the caller's field name substituted in.
package ocpiformat
