// Package bladekit serves multi-locale web applications whose translations
// live in hierarchical properties files.
//
// An application declares its supported locales and a resource tree of
// Aspect, BladeSet, and Blade scopes. bladekit merges that tree into one
// token table per locale, forwards unqualified requests to a
// locale-qualified URL, and rewrites @{token} markers in served assets with
// the locale's translations on the fly.
//
//	cfg, err := bladekit.LoadConfig("bladekit.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app, err := bladekit.New(cfg, bladekit.WithWatch())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Fatal(app.Run())
//
// The pkg/i18n package is usable on its own for programmatic translation,
// locale negotiation, and streaming substitution without the HTTP layer.
package bladekit
