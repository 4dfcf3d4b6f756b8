package cookie

import (
	"net/http"
	"time"
)

// DefaultName is the cookie carrying the forced locale.
const DefaultName = "locale"

// DefaultMaxAge keeps the locale choice for one year.
const DefaultMaxAge = 365 * 24 * time.Hour

// Manager reads and writes the locale cookie.
type Manager struct {
	name     string
	path     string
	domain   string
	maxAge   time.Duration
	secure   bool
	sameSite http.SameSite
}

// Option configures the Manager.
type Option func(*Manager)

// WithName sets the cookie name.
func WithName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.name = name
		}
	}
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.path = path
		}
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(m *Manager) {
		m.domain = domain
	}
}

// WithMaxAge sets the cookie lifetime.
func WithMaxAge(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.maxAge = d
		}
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithSameSite sets the SameSite policy.
func WithSameSite(mode http.SameSite) Option {
	return func(m *Manager) {
		m.sameSite = mode
	}
}

// New creates a cookie Manager with the given options.
func New(opts ...Option) *Manager {
	m := &Manager{
		name:     DefaultName,
		path:     "/",
		maxAge:   DefaultMaxAge,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the configured cookie name.
func (m *Manager) Name() string {
	return m.name
}

// Get returns the locale stored in the request's cookie, if any.
func (m *Manager) Get(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Set writes the locale cookie on the response.
func (m *Manager) Set(w http.ResponseWriter, locale string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    locale,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   int(m.maxAge.Seconds()),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: m.sameSite,
	})
}

// Clear expires the locale cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   -1,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: m.sameSite,
	})
}
