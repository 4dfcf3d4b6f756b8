package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/bladekit/bladekit/pkg/propfile"
)

const (
	resourceDir   = "i18n"
	resourceExt   = ".properties"
	bladesetsDir  = "bladesets"
	bladesDir     = "blades"
	defaultAspect = "default"
)

// ResourceFile is one .properties file owned by a (scope, locale) pair.
type ResourceFile struct {
	Scope   *Scope
	Locale  string
	Path    string
	Entries []propfile.Entry
}

// Store loads and indexes per-locale property resources from a scope tree.
// It is immutable after construction and safe for concurrent use.
type Store struct {
	root      *Scope
	supported []string
	byLocale  map[string][]*ResourceFile
	warnings  []string
}

// StoreOption configures the Store during construction.
type StoreOption func(*Store)

// WithSupportedLocales declares the application's supported locale set.
// The first locale is treated as the default unless resources say otherwise.
func WithSupportedLocales(locales ...string) StoreOption {
	return func(s *Store) {
		for _, l := range locales {
			if l = NormalizeLocale(l); l != "" {
				s.supported = append(s.supported, l)
			}
		}
	}
}

// WithAspectName sets the name of the root Aspect scope.
func WithAspectName(name string) StoreOption {
	return func(s *Store) {
		if name != "" {
			s.root = NewAspect(name)
		}
	}
}

// NewStore scans fsys for locale resources and builds the scope tree.
//
// Expected layout, rooted at the application directory:
//
//	i18n/<locale>.properties
//	bladesets/<set>/i18n/<locale>.properties
//	bladesets/<set>/blades/<blade>/i18n/<locale>.properties
//
// A file may carry a prefix before the locale, e.g. grid_en.properties.
// Files for locales outside the supported set are skipped with a warning.
// A scope with an i18n directory but no loadable resource files for any
// supported locale fails with ErrResourceNotFound.
func NewStore(fsys fs.FS, opts ...StoreOption) (*Store, error) {
	s := &Store{
		root:     NewAspect(defaultAspect),
		byLocale: make(map[string][]*ResourceFile),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.supported) == 0 {
		return nil, fmt.Errorf("i18n: at least one supported locale is required")
	}

	if err := s.loadScope(fsys, ".", s.root); err != nil {
		return nil, err
	}

	sets, err := fs.ReadDir(fsys, bladesetsDir)
	if err == nil {
		for _, set := range sets {
			if !set.IsDir() {
				continue
			}
			bsScope := s.root.AddBladeSet(set.Name())
			bsDir := path.Join(bladesetsDir, set.Name())
			if err := s.loadScope(fsys, bsDir, bsScope); err != nil {
				return nil, err
			}

			blades, err := fs.ReadDir(fsys, path.Join(bsDir, bladesDir))
			if err != nil {
				continue
			}
			for _, blade := range blades {
				if !blade.IsDir() {
					continue
				}
				bladeScope := bsScope.AddBlade(blade.Name())
				if err := s.loadScope(fsys, path.Join(bsDir, bladesDir, blade.Name()), bladeScope); err != nil {
					return nil, err
				}
			}
		}
	}

	// Stable merge order: aspect before bladesets before blades, then by path.
	for _, files := range s.byLocale {
		sort.SliceStable(files, func(i, j int) bool {
			if files[i].Scope.Kind != files[j].Scope.Kind {
				return files[i].Scope.Kind < files[j].Scope.Kind
			}
			return files[i].Path < files[j].Path
		})
	}

	return s, nil
}

// loadScope loads the resource files owned by one scope, if it declares any.
func (s *Store) loadScope(fsys fs.FS, dir string, scope *Scope) error {
	i18nDir := path.Join(dir, resourceDir)
	entries, err := fs.ReadDir(fsys, i18nDir)
	if err != nil {
		// No i18n directory means the scope simply has no resources.
		return nil
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), resourceExt) {
			continue
		}

		locale, ok := LocaleFromFilename(entry.Name())
		if !ok {
			s.warnings = append(s.warnings, fmt.Sprintf("%s: cannot determine locale from filename", path.Join(i18nDir, entry.Name())))
			continue
		}
		if !slices.Contains(s.supported, locale) {
			s.warnings = append(s.warnings, fmt.Sprintf("%s: locale %q is not in the declared supported set", path.Join(i18nDir, entry.Name()), locale))
			continue
		}

		filePath := path.Join(i18nDir, entry.Name())
		pf, err := propfile.ParseFS(fsys, filePath)
		if err != nil {
			return err
		}

		s.byLocale[locale] = append(s.byLocale[locale], &ResourceFile{
			Scope:   scope,
			Locale:  locale,
			Path:    filePath,
			Entries: pf.Entries(),
		})
		loaded++
	}

	if loaded == 0 {
		return fmt.Errorf("%w: %q declares i18n support but has no resource files for any supported locale", ErrResourceNotFound, scope.Path())
	}
	return nil
}

// Root returns the root Aspect scope.
func (s *Store) Root() *Scope {
	return s.root
}

// SupportedLocales returns the declared supported locale set.
func (s *Store) SupportedLocales() []string {
	return s.supported
}

// Locales returns the locales that have at least one loaded resource file.
func (s *Store) Locales() []string {
	locales := make([]string, 0, len(s.byLocale))
	for l := range s.byLocale {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// FilesForLocale returns every resource file loaded for locale, ordered by
// scope specificity (Aspect first) for precedence resolution.
func (s *Store) FilesForLocale(locale string) []*ResourceFile {
	return s.byLocale[NormalizeLocale(locale)]
}

// VisibleFiles returns the resource files visible to the given scope for a
// locale: its ancestors' files followed by its own, in override order.
func (s *Store) VisibleFiles(scope *Scope, locale string) []*ResourceFile {
	chain := scope.Chain()
	var visible []*ResourceFile
	for _, f := range s.FilesForLocale(locale) {
		if slices.Contains(chain, f.Scope) {
			visible = append(visible, f)
		}
	}
	return visible
}

// Warnings returns non-fatal configuration findings collected during loading,
// such as resource files for undeclared locales.
func (s *Store) Warnings() []string {
	return s.warnings
}

// localeRe matches a trailing locale component in a resource filename:
// "en", "en-GB", or "en_GB", optionally preceded by "prefix_".
var localeRe = regexp.MustCompile(`(?i)(?:^|_)([a-z]{2,3}(?:[-_][a-z]{2})?)$`)

// LocaleFromFilename extracts the normalized locale a resource filename
// belongs to, e.g. "grid_en.properties" yields "en" and "en_GB.properties"
// yields "en-gb". The ".properties" extension is optional. Returns false
// when the name carries no recognizable locale component.
func LocaleFromFilename(name string) (string, bool) {
	base := strings.TrimSuffix(name, resourceExt)
	m := localeRe.FindStringSubmatch(base)
	if m == nil {
		return "", false
	}
	return NormalizeLocale(m[1]), true
}

// NormalizeLocale lowercases a locale tag and canonicalizes the separator,
// e.g. "en_GB" becomes "en-gb".
func NormalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// BaseLocale strips the region from a locale tag, e.g. "en-gb" becomes "en".
func BaseLocale(locale string) string {
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}
