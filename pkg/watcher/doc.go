// Package watcher detects resource file changes on disk during development
// and notifies the i18n layer so cached token tables can be invalidated.
//
// The core resolver only exposes an invalidation entry point; this package
// is the collaborator that drives it from filesystem events.
package watcher
