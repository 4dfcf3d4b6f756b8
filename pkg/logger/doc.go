// Package logger provides structured logging built on log/slog with
// automatic context-based attribute injection.
//
// A ContextExtractor pulls a request-scoped value (request ID, active
// locale) out of a context.Context; the handler decorator applies every
// extractor on each log call, so handlers and middleware never repeat the
// same attributes by hand.
//
//	log := logger.New(middlewares.RequestIDExtractor(), middlewares.LocaleExtractor())
//	log.InfoContext(ctx, "token table rebuilt", slog.String("locale", "de"))
package logger
