package i18n

import (
	"context"
	"log/slog"
	"sync"
)

// MissingReporter receives missing-translation events. Implementations must
// be safe for concurrent use; the streaming engine and translators call
// Report from arbitrary goroutines.
type MissingReporter interface {
	Report(err *MissingTranslationError)
}

// ReportFunc adapts a function to the MissingReporter interface.
type ReportFunc func(err *MissingTranslationError)

// Report calls the wrapped function.
func (f ReportFunc) Report(err *MissingTranslationError) {
	f(err)
}

// NopReporter discards all events. Used when no reporter is configured.
var NopReporter MissingReporter = ReportFunc(func(*MissingTranslationError) {})

// LogReporter reports missing translations to a slog.Logger at warn level.
func LogReporter(log *slog.Logger) MissingReporter {
	return ReportFunc(func(err *MissingTranslationError) {
		log.WarnContext(context.Background(), "missing translation",
			slog.String("locale", err.Locale),
			slog.String("token", err.Key),
		)
	})
}

// CollectingReporter accumulates events in memory. Useful in tests and in
// the validation CLI, where all misses for a run are reported together.
type CollectingReporter struct {
	mu     sync.Mutex
	events []*MissingTranslationError
}

// Report records the event.
func (c *CollectingReporter) Report(err *MissingTranslationError) {
	c.mu.Lock()
	c.events = append(c.events, err)
	c.mu.Unlock()
}

// Events returns a snapshot of the recorded events.
func (c *CollectingReporter) Events() []*MissingTranslationError {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*MissingTranslationError, len(c.events))
	copy(out, c.events)
	return out
}

// Reset clears all recorded events.
func (c *CollectingReporter) Reset() {
	c.mu.Lock()
	c.events = nil
	c.mu.Unlock()
}
