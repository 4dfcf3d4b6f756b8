// Package middlewares provides the HTTP middleware set for locale-aware
// serving: locale forwarding for unqualified URLs, request-scoped
// translators, request IDs, and panic recovery.
//
// All middleware use the standard func(http.Handler) http.Handler shape and
// compose with chi or any net/http router.
package middlewares
