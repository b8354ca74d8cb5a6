// Package i18n translates validation messages.
//
// A Translator holds one catalog per language, loaded through a
// TranslationAdapter (an in-memory map, a single file, or a directory of an
// fs.FS such as the embedded default locales). Catalog values are looked up by
// dot-separated keys and may contain named placeholders written as %{name}:
//
//	tr, err := i18n.NewDefaultTranslator(ctx, i18n.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	lang := tr.Match("de-AT,de;q=0.9,en;q=0.5") // "de"
//	msgs := tr.TranslateErrors(lang, verrs)    // map[field][]message
//
// Validation errors carry a TranslationKey and TranslationValues; the values
// fill the placeholders. A key missing from the catalog falls back to the
// error's English Message.
//
// Language negotiation uses golang.org/x/text/language, so regional variants
// and Accept-Language style lists resolve to the closest supported catalog.
package i18n
