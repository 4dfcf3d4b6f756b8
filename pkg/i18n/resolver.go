package i18n

import (
	"fmt"
	"sort"
	"sync"
)

// TokenTable is the effective token table for one locale: the fully merged
// mapping from token key to translation template after applying scope
// override precedence. It is immutable once published and safe for
// arbitrary concurrent readers.
type TokenTable struct {
	locale  string
	entries map[string]string
}

// Locale returns the locale this table was resolved for.
func (t *TokenTable) Locale() string {
	return t.locale
}

// Lookup returns the translation template for a token key.
func (t *TokenTable) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Keys returns all token keys in the table, sorted.
func (t *TokenTable) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of tokens in the table.
func (t *TokenTable) Len() int {
	return len(t.entries)
}

// Resolver merges Store resources into one effective token table per locale.
// Tables are cached; Invalidate drops a cached table so the next Resolve
// rebuilds it. The rebuild is copy-then-swap: a new table is merged fully
// before it is published, so concurrent readers never observe a partial
// merge. Construct one Resolver per Store; there is no package-level state.
type Resolver struct {
	mu    sync.RWMutex
	store *Store
	cache map[string]*TokenTable
	// gen increments on every invalidation or store swap. A merge built
	// against an older generation is discarded instead of cached, so an
	// in-flight Resolve can never resurrect replaced resources.
	gen uint64
}

// NewResolver creates a Resolver backed by the given Store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{
		store: store,
		cache: make(map[string]*TokenTable),
	}
}

// Resolve returns the effective token table for locale, building and caching
// it on first use. The merge folds resource files in scope order with later
// (more specific) scopes overwriting same-key entries from earlier ones.
// A key defined twice within one scope for the locale is a configuration
// error and fails with *DuplicateTokenError.
//
// The table contains only entries actually defined for the locale; there is
// no implicit fallback to the default locale.
func (r *Resolver) Resolve(locale string) (*TokenTable, error) {
	locale = NormalizeLocale(locale)
	if locale == "" {
		return nil, ErrEmptyLocale
	}

	for {
		r.mu.RLock()
		table, ok := r.cache[locale]
		store, gen := r.store, r.gen
		r.mu.RUnlock()
		if ok {
			return table, nil
		}

		table, err := build(store, locale)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		if r.gen == gen {
			// A concurrent Resolve may have published meanwhile; either
			// result is a complete merge of the same store, so last write
			// wins.
			r.cache[locale] = table
			r.mu.Unlock()
			return table, nil
		}
		// The store was swapped or invalidated while merging. Caching the
		// stale table would serve replaced resources forever; retry against
		// the current store instead.
		r.mu.Unlock()
	}
}

// build merges all resource files for locale into a fresh table.
func build(store *Store, locale string) (*TokenTable, error) {
	entries := make(map[string]string)

	// Track which scope defined each key at the current specificity level so
	// same-scope duplicates are caught while cross-scope overrides pass.
	definedIn := make(map[string]*Scope)

	for _, file := range store.FilesForLocale(locale) {
		for _, entry := range file.Entries {
			if owner, seen := definedIn[entry.Key]; seen && owner == file.Scope {
				return nil, &DuplicateTokenError{
					Scope:  file.Scope.Path(),
					Locale: locale,
					Key:    entry.Key,
				}
			}
			definedIn[entry.Key] = file.Scope
			entries[entry.Key] = entry.Value
		}
	}

	return &TokenTable{locale: locale, entries: entries}, nil
}

// Check eagerly resolves every supported locale, surfacing configuration
// errors (duplicate tokens, empty merges) at startup rather than on first
// request.
func (r *Resolver) Check() error {
	for _, locale := range r.Store().SupportedLocales() {
		if _, err := r.Resolve(locale); err != nil {
			return fmt.Errorf("resolving locale %q: %w", locale, err)
		}
	}
	return nil
}

// Invalidate drops the cached table for locale. The next Resolve call
// rebuilds it from the Store. Readers holding the prior table keep a
// complete, consistent snapshot.
func (r *Resolver) Invalidate(locale string) {
	locale = NormalizeLocale(locale)
	r.mu.Lock()
	delete(r.cache, locale)
	r.gen++
	r.mu.Unlock()
}

// InvalidateAll drops every cached table.
func (r *Resolver) InvalidateAll() {
	r.mu.Lock()
	r.cache = make(map[string]*TokenTable)
	r.gen++
	r.mu.Unlock()
}

// SetStore swaps in a freshly loaded Store and drops every cached table.
// Used by development tooling after resource files change on disk.
func (r *Resolver) SetStore(store *Store) {
	r.mu.Lock()
	r.store = store
	r.cache = make(map[string]*TokenTable)
	r.gen++
	r.mu.Unlock()
}

// Store returns the underlying resource store.
func (r *Resolver) Store() *Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store
}
