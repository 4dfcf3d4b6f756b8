// Package internal holds request plumbing shared by the root package and
// the middleware set: the value-extractor chain used for locale detection.
package internal
