package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/bladekit/bladekit/pkg/i18n"
)

// DefaultExtension limits change notifications to resource files.
const DefaultExtension = ".properties"

// Watcher observes a directory tree and invokes a callback when resource
// files change. Directories created while watching are picked up
// automatically so new blades get coverage without a restart.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func(path string)
	log      *slog.Logger
	ext      string
}

// Option configures the Watcher.
type Option func(*Watcher)

// WithLogger sets the logger for watch diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

// WithExtension sets the file extension that triggers notifications.
func WithExtension(ext string) Option {
	return func(w *Watcher) {
		if ext != "" {
			w.ext = ext
		}
	}
}

// New creates a Watcher over root and all its subdirectories. onChange is
// called with the changed file's path; it must be safe for calls from the
// watch goroutine.
func New(root string, onChange func(path string), opts ...Option) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watcher: onChange callback is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		log:      slog.Default(),
		ext:      DefaultExtension,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run processes filesystem events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", slog.Any("error", err))
		}
	}
}

// Close stops the watcher. Run returns after the event channel drains.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.log.Warn("cannot watch new directory", slog.String("dir", event.Name), slog.Any("error", err))
			}
			return
		}
	}

	if !strings.HasSuffix(event.Name, w.ext) {
		return
	}
	if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		w.log.Debug("resource changed", slog.String("file", event.Name))
		w.onChange(event.Name)
	}
}

// addTree registers root and every subdirectory with the watcher.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watcher: adding %q: %w", path, err)
		}
		return nil
	})
}

// LocaleFromPath extracts the locale a changed resource file belongs to from
// its filename, e.g. "grid_en.properties" yields "en". Returns "" when the
// name carries no recognizable locale; callers should then invalidate all
// locales.
func LocaleFromPath(path string) string {
	locale, ok := i18n.LocaleFromFilename(filepath.Base(path))
	if !ok {
		return ""
	}
	return locale
}
