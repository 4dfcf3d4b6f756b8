package bladekit

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/bladekit/bladekit/pkg/cookie"
	"github.com/bladekit/bladekit/pkg/i18n"
)

// Option configures an App during construction.
type Option func(*App)

// WithLogger sets the application logger. Defaults to a JSON logger that
// annotates entries with the request ID and locale.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithResourceFS overrides the resource filesystem. Defaults to
// os.DirFS(cfg.ResourceDir). Useful for embedding resources or for tests.
func WithResourceFS(fsys fs.FS) Option {
	return func(a *App) {
		a.resourceFS = fsys
	}
}

// WithAssetFS overrides the asset filesystem. Defaults to
// os.DirFS(cfg.AssetDir) when the config declares an asset directory.
func WithAssetFS(fsys fs.FS) Option {
	return func(a *App) {
		a.assetFS = fsys
	}
}

// WithMissingReporter sets the reporter receiving missing-translation
// events from request handling. Defaults to warn-level log entries.
func WithMissingReporter(r i18n.MissingReporter) Option {
	return func(a *App) {
		if r != nil {
			a.reporter = r
		}
	}
}

// WithCookies replaces the forced-locale cookie manager.
func WithCookies(m *cookie.Manager) Option {
	return func(a *App) {
		if m != nil {
			a.cookies = m
		}
	}
}

// WithWatch enables filesystem watching: edits to properties files under
// the resource directory reload the store while the server runs.
func WithWatch() Option {
	return func(a *App) {
		a.watch = true
	}
}

// WithShutdownTimeout bounds graceful shutdown. Defaults to 30 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.shutdownTimeout = d
		}
	}
}
