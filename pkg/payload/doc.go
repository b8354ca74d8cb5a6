// Package payload decodes OCPI objects from JSON or YAML documents and
// validates them against the data contracts in the modules packages.
//
// A document holds either one object, a list of objects, or an OCPI response
// envelope whose data field is an object or a list. The object kind is
// chosen by name from the static table returned by Kinds:
//
//	kind, _ := payload.Lookup("location")
//	doc, err := payload.Decode(kind, data, payload.WithFormat(payload.FormatYAML))
//	if err != nil {
//		return err // malformed document
//	}
//	verrs := doc.Validate() // field violations, nil when valid
//
// Runner applies the same steps to many files concurrently and collects a
// Report with messages translated through pkg/i18n.
package payload
