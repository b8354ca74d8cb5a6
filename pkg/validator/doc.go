// Package validator provides composable, type-safe validation rules for the
// OCPI data transfer objects and a small set of helpers for walking nested
// objects.
//
// A Rule couples a boolean Check function with translation-friendly error
// metadata. Rules are evaluated with Apply, which aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so every field
// problem of an object is reported in one error return.
//
// # Architecture
//
// Each source file groups a family of rules:
//
//   - string_rules.go: Required, MinLen, MaxLen, Len (measured in characters), Pattern
//   - numeric_rules.go: Min, Max, Between, NonNegative, MaxDecimalPlaces
//   - collection_rules.go: RequiredSlice, MinItems, MaxItems, Each
//   - choice_rules.go: InList and OneOf for enum types with an IsValid method
//   - format_rules.go: ValidURL, Latitude, Longitude, ISODate
//   - locale_rules.go: LanguageCode (ISO 639-1), CountryCode (ISO 3166-1) and
//     CurrencyCode (ISO 4217)
//   - ocpi_rules.go: CiString, OcpiDateTime, TimeOfDay and Format, adapters
//     over package ocpiformat
//   - nested.go: Validatable, Nested, NestedPtr, NestedEach, Join, When
//
// Every exported rule constructor simply returns a Rule value; there is no
// hidden global state, so the package is stateless and goroutine-safe.
//
// # Usage
//
//	func (c Connector) Validate() error {
//		return validator.Apply(
//			validator.Required("id", c.ID),
//			validator.CiString("id", c.ID),
//			validator.OneOf("standard", c.Standard),
//			validator.Between("max_voltage", c.MaxVoltage, 1, 2_000_000),
//			validator.OcpiDateTime("last_updated", c.LastUpdated),
//		)
//	}
//
// Nested objects are validated through their own Validate method and their
// errors are re-rooted under the parent path:
//
//	validator.NestedEach("evses", l.EVSEs)    // evses[0].uid
//	validator.NestedPtr("coordinates", l.Geo) // coordinates.latitude
//
// # Error Handling
//
// ValidationErrors can be detected with IsValidationError and unpacked with
// ExtractValidationErrors even when wrapped. Individual field errors can be
// inspected with Has, Get, GetErrors, Fields and Map. TranslationKey and
// TranslationValues feed the i18n package.
package validator
