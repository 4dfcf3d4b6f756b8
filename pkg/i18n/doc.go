// Package i18n implements the locale resource bundling core: hierarchical
// resource resolution, parameterized translation expansion, locale-aware
// date and number formatting, and streaming token substitution over HTML/JS
// payloads.
//
// Resources are .properties files owned by scopes in a three-level hierarchy:
// Aspect (root), BladeSet, and Blade. For each locale the resolver folds the
// scope chain into a single effective token table, with more specific scopes
// overriding less specific ones. Tables are immutable once published and safe
// for concurrent readers; rebuilds swap in a fully merged replacement.
//
// Basic usage:
//
//	store, err := i18n.NewStore(os.DirFS("app"), i18n.WithSupportedLocales("en", "de"))
//	if err != nil { ... }
//	resolver := i18n.NewResolver(store)
//	tr := i18n.NewTranslator(resolver, "de")
//
//	msg, err := tr.T("mybank.account.greeting", map[string]any{"name": "Ada"})
//
// Markup is transformed in a single streaming pass, replacing @{token.key}
// markers as chunks flow through:
//
//	engine := i18n.NewEngine(table, i18n.WithMissingReporter(log))
//	err := engine.Stream(ctx, dst, src)
//
// Missing translations never abort a stream: the engine emits a visible
// diagnostic marker in place of the value and reports the event to the
// configured reporter.
package i18n
