// Package i18n looks up translated interface labels.
//
// Translations are grouped by package, source and locale, mirroring the
// directory layout they are loaded from:
//
//	Translations/
//	  Vendor.Site/
//	    de/
//	      Main.yaml
//	      NodeTypes.Teaser.json
//	    en/
//	      Main.yaml
//
// Each file holds a (possibly nested) map of ids to messages. Nested keys are
// addressed with dotted ids, so "button.save" reads {"button": {"save": ...}}.
//
// # Usage
//
//	catalog := i18n.NewCatalog(i18n.WithDefaultLocale("en"))
//	if err := catalog.LoadDir(ctx, "./Translations"); err != nil {
//		return err
//	}
//
//	msg := catalog.Translate(i18n.Request{
//		ID:      "greeting",
//		Package: "Vendor.Site",
//		Args:    map[string]any{"name": "Ada"},
//		Locale:  "de_CH",
//	})
//
// Lookup tries the requested locale, then its language ("de_CH" then "de"),
// then the default locale. Messages may use "{name}", "{0}" or "%{name}"
// placeholders. When Quantity is set the ".zero", ".one" and ".other" plural
// forms are tried first.
//
// A missing message yields the request fallback with placeholders applied, or
// the id itself when no fallback is given.
//
// Shorthand ids in the form "Vendor.Package:Source:id" are split with
// ParseShorthand.
package i18n
