package bladekit

import (
	"fmt"
	"os"
	"slices"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/bladekit/bladekit/pkg/i18n"
)

// Config declares the application: its mount point, the supported locale
// set, the default locale, and where resources and assets live on disk.
type Config struct {
	// App is the application name, used as the URL base path segment and
	// the root Aspect name.
	App string `yaml:"app"`

	// Addr is the listen address for the dev server.
	Addr string `yaml:"addr"`

	// Locales is the declared supported locale set.
	Locales []string `yaml:"locales"`

	// DefaultLocale is used when no client signal matches. Must be a member
	// of Locales; defaults to the first entry.
	DefaultLocale string `yaml:"default_locale"`

	// ResourceDir is the application root containing i18n/ and bladesets/.
	ResourceDir string `yaml:"resource_dir"`

	// AssetDir holds the HTML/JS payloads served through token substitution.
	AssetDir string `yaml:"asset_dir"`

	// CookieName overrides the forced-locale cookie name.
	CookieName string `yaml:"cookie_name"`
}

// LoadConfig reads a YAML configuration file and applies environment
// overrides (BLADEKIT_ADDR, BLADEKIT_DEFAULT_LOCALE).
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if v := os.Getenv("BLADEKIT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("BLADEKIT_DEFAULT_LOCALE"); v != "" {
		cfg.DefaultLocale = v
	}

	return cfg, nil
}

// Validate normalizes the configuration and rejects inconsistent locale
// declarations before any resources are loaded.
func (c *Config) Validate() error {
	if c.App == "" {
		return fmt.Errorf("config: app name is required")
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if len(c.Locales) == 0 {
		return fmt.Errorf("config: at least one supported locale is required")
	}

	normalized := make([]string, 0, len(c.Locales))
	for _, l := range c.Locales {
		tag := i18n.NormalizeLocale(l)
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("config: invalid locale %q: %w", l, err)
		}
		if !slices.Contains(normalized, tag) {
			normalized = append(normalized, tag)
		}
	}
	c.Locales = normalized

	if c.DefaultLocale == "" {
		c.DefaultLocale = c.Locales[0]
	} else {
		c.DefaultLocale = i18n.NormalizeLocale(c.DefaultLocale)
		if !slices.Contains(c.Locales, c.DefaultLocale) {
			return fmt.Errorf("%w: default locale %q is not in the supported set", i18n.ErrUnsupportedLocale, c.DefaultLocale)
		}
	}

	return nil
}

// BasePath returns the application's URL mount point, e.g. "/mybank".
func (c *Config) BasePath() string {
	return "/" + c.App
}
