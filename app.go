package bladekit

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bladekit/bladekit/middlewares"
	"github.com/bladekit/bladekit/pkg/cookie"
	"github.com/bladekit/bladekit/pkg/i18n"
	"github.com/bladekit/bladekit/pkg/logger"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
)

// App serves one application: its locale forwarder, its token-substituted
// asset pages, and a locale-switch endpoint. App is immutable after
// creation except for Reload, which swaps the resource store atomically.
type App struct {
	cfg Config
	log *slog.Logger

	resourceFS fs.FS
	assetFS    fs.FS

	resolver *i18n.Resolver
	reporter i18n.MissingReporter
	cookies  *cookie.Manager

	server *http.Server
	router chi.Router

	watch           bool
	shutdownTimeout time.Duration
	done            chan struct{}
	stopOnce        sync.Once
}

// New creates an App from a validated configuration, loads its resources,
// and eagerly resolves every supported locale so that duplicate tokens fail
// startup instead of the first request.
//
// Example:
//
//	app, err := bladekit.New(cfg,
//	    bladekit.WithLogger(log),
//	    bladekit.WithWatch(),
//	)
func New(cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		cfg:             cfg,
		shutdownTimeout: 30 * time.Second,
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		a.log = logger.New(middlewares.RequestIDExtractor(), middlewares.LocaleExtractor())
	}
	if a.reporter == nil {
		a.reporter = i18n.LogReporter(a.log)
	}
	if a.cookies == nil {
		name := cfg.CookieName
		if name == "" {
			name = cookie.DefaultName
		}
		a.cookies = cookie.New(cookie.WithName(name), cookie.WithPath(cfg.BasePath()))
	}
	if a.resourceFS == nil {
		if cfg.ResourceDir == "" {
			return nil, fmt.Errorf("config: resource_dir is required")
		}
		a.resourceFS = os.DirFS(cfg.ResourceDir)
	}
	if a.assetFS == nil && cfg.AssetDir != "" {
		a.assetFS = os.DirFS(cfg.AssetDir)
	}

	store, err := a.loadStore()
	if err != nil {
		return nil, err
	}
	a.resolver = i18n.NewResolver(store)
	if err := a.resolver.Check(); err != nil {
		return nil, fmt.Errorf("resolving translations: %w", err)
	}

	a.router = a.routes()
	a.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.router,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	return a, nil
}

func (a *App) loadStore() (*i18n.Store, error) {
	store, err := i18n.NewStore(a.resourceFS,
		i18n.WithSupportedLocales(a.cfg.Locales...),
		i18n.WithAspectName(a.cfg.App),
	)
	if err != nil {
		return nil, fmt.Errorf("loading resources: %w", err)
	}
	for _, warn := range store.Warnings() {
		a.log.Warn("resource warning", slog.String("detail", warn))
	}
	return store, nil
}

// Reload rebuilds the resource store from the filesystem and publishes it.
// On any error the previous store keeps serving.
func (a *App) Reload() error {
	store, err := a.loadStore()
	if err != nil {
		return err
	}

	probe := i18n.NewResolver(store)
	if err := probe.Check(); err != nil {
		return fmt.Errorf("resolving translations: %w", err)
	}

	a.resolver.SetStore(store)
	a.log.Info("resources reloaded", slog.Int("locales", len(store.Locales())))
	return nil
}

// Handler returns the fully wired HTTP handler. Useful for tests and for
// embedding the app under an outer router.
func (a *App) Handler() http.Handler {
	return a.router
}

// Resolver exposes the app's resolver for programmatic translation.
func (a *App) Resolver() *i18n.Resolver {
	return a.resolver
}

func (a *App) routes() chi.Router {
	base := a.cfg.BasePath()

	r := chi.NewRouter()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(middlewares.WithRecoverLogger(a.log)))
	r.Use(middlewares.LocaleForward(base, a.cfg.Locales, a.cfg.DefaultLocale,
		middlewares.WithForwardCookies(a.cookies),
	))
	r.Use(middlewares.I18n(a.resolver, base, middlewares.WithI18nReporter(a.reporter)))

	r.Post(base+"/i18n/locale", a.handleSetLocale)
	r.Get(base+"/{locale}/*", a.handleAsset)
	r.Get(base+"/{locale}/", a.handleAsset)

	return r
}

// substitutable reports whether assets with the given extension carry
// translation markers. Binary assets are copied through untouched.
func substitutable(ext string) bool {
	switch ext {
	case ".html", ".htm", ".js", ".css", ".xml", ".json", ".txt":
		return true
	}
	return false
}

func (a *App) handleAsset(w http.ResponseWriter, r *http.Request) {
	if a.assetFS == nil {
		http.NotFound(w, r)
		return
	}

	name := chi.URLParam(r, "*")
	if name == "" {
		name = "index.html"
	}
	name = path.Clean(name)
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		http.NotFound(w, r)
		return
	}

	f, err := a.assetFS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		a.log.ErrorContext(r.Context(), "cannot open asset", slog.String("asset", name), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	ext := path.Ext(name)
	if ct := mime.TypeByExtension(ext); ct != "" {
		w.Header().Set("Content-Type", ct)
	}

	if !substitutable(ext) {
		if _, err := io.Copy(w, f); err != nil {
			a.log.ErrorContext(r.Context(), "asset copy failed", slog.String("asset", name), slog.Any("error", err))
		}
		return
	}

	tr := middlewares.GetTranslator(r.Context())
	if tr == nil {
		// Forwarder guarantees a locale segment on this route.
		http.NotFound(w, r)
		return
	}

	engine, err := tr.Engine()
	if err != nil {
		a.log.ErrorContext(r.Context(), "cannot build substitution engine", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := engine.Stream(r.Context(), w, f); err != nil {
		a.log.ErrorContext(r.Context(), "asset substitution failed", slog.String("asset", name), slog.Any("error", err))
	}
}

// handleSetLocale pins the client's locale in a cookie and redirects into
// the chosen locale's URL space. Subsequent unqualified requests forward to
// the pinned locale ahead of any Accept-Language negotiation.
func (a *App) handleSetLocale(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	locale := i18n.NormalizeLocale(r.PostFormValue("locale"))
	supported := false
	for _, l := range a.cfg.Locales {
		if l == locale {
			supported = true
			break
		}
	}
	if !supported {
		http.Error(w, fmt.Sprintf("unsupported locale %q", locale), http.StatusBadRequest)
		return
	}

	a.cookies.Set(w, locale)
	http.Redirect(w, r, a.cfg.BasePath()+"/"+locale+"/", http.StatusSeeOther)
}
