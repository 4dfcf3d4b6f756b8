package propfile

import (
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"
)

// Entry is a single key=value pair with its position in the source file.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// File is a parsed .properties file.
type File struct {
	entries []Entry
}

// Parse parses .properties content from a byte slice.
// Repeated keys are preserved as separate entries; detecting and rejecting
// duplicates is the caller's responsibility.
func Parse(data []byte) (*File, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("propfile: content is not valid UTF-8")
	}

	f := &File{}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	for i, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}

		key, value, ok := splitEntry(trimmed)
		if !ok {
			return nil, fmt.Errorf("propfile: line %d: missing '=' separator", i+1)
		}

		f.entries = append(f.entries, Entry{Key: key, Value: value, Line: i + 1})
	}

	return f, nil
}

// ParseFS reads and parses a .properties file from the given filesystem.
func ParseFS(fsys fs.FS, path string) (*File, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("propfile: reading %q: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (in %q)", err, path)
	}
	return f, nil
}

// Entries returns all entries in document order, including repeated keys.
func (f *File) Entries() []Entry {
	return f.entries
}

// Len returns the number of entries.
func (f *File) Len() int {
	return len(f.entries)
}

// Get returns the value of the first entry for key.
func (f *File) Get(key string) (string, bool) {
	for _, e := range f.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// splitEntry splits "key=value" or "key: value" into its parts.
// The first '=' or ':' wins; surrounding whitespace is stripped.
func splitEntry(s string) (key, value string, ok bool) {
	for i, ch := range s {
		if ch == '=' || ch == ':' {
			key = strings.TrimSpace(s[:i])
			value = strings.TrimSpace(s[i+1:])
			return key, value, key != ""
		}
	}
	return "", "", false
}
