package i18n

import (
	"bytes"
	"context"
	"io"
)

// Marker syntax recognized by the streaming engine: @{dotted.token.key}.
const (
	markerOpen  = "@{"
	markerClose = '}'
)

// DefaultChunkSize is the read buffer size used by Stream.
const DefaultChunkSize = 4096

// DefaultMarkerLimit caps the token key length the engine recognizes, which
// also bounds how much partial-marker state is buffered across chunk
// boundaries. Real token keys are short; an over-long "marker" is page text
// that happens to contain "@{".
const DefaultMarkerLimit = 256

// Engine streams markup or code, replacing inline @{token.key} markers with
// values from an effective token table. Processing is a single pass over
// input chunks: only a partial-marker tail is retained between reads, never
// the whole document.
//
// A marker whose token has no table entry does not fail the stream: the
// engine writes a visible diagnostic in its place and reports a
// *MissingTranslationError to the configured reporter.
type Engine struct {
	table       *TokenTable
	report      MissingReporter
	chunkSize   int
	markerLimit int
}

// EngineOption configures the Engine during construction.
type EngineOption func(*Engine)

// WithMissingReporter sets the reporter that receives missing-translation
// events. Defaults to NopReporter.
func WithMissingReporter(r MissingReporter) EngineOption {
	return func(e *Engine) {
		if r != nil {
			e.report = r
		}
	}
}

// WithChunkSize sets the read buffer size.
func WithChunkSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.chunkSize = n
		}
	}
}

// WithMarkerLimit sets the maximum recognized token key length.
func WithMarkerLimit(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.markerLimit = n
		}
	}
}

// NewEngine creates a substitution engine over the given token table.
func NewEngine(table *TokenTable, opts ...EngineOption) *Engine {
	e := &Engine{
		table:       table,
		report:      NopReporter,
		chunkSize:   DefaultChunkSize,
		markerLimit: DefaultMarkerLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stream copies src to dst, substituting token markers as chunks flow
// through. It blocks only on src reads and dst writes. When ctx is
// cancelled the engine stops consuming input, discards any buffered
// partial-marker state, and returns ctx's error; bytes already flushed to
// dst stay flushed.
func (e *Engine) Stream(ctx context.Context, dst io.Writer, src io.Reader) error {
	buf := make([]byte, e.chunkSize)
	var carry []byte

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			data := buf[:n]
			if len(carry) > 0 {
				data = append(carry, data...)
			}
			var err error
			carry, err = e.process(dst, data)
			if err != nil {
				return err
			}
		}

		if readErr == io.EOF {
			// An unterminated marker at end of input is plain text.
			if len(carry) > 0 {
				if _, err := dst.Write(carry); err != nil {
					return err
				}
			}
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}

// SubstituteString runs the engine over an in-memory string. Convenience
// wrapper used by tests and small fragments; large payloads should use
// Stream.
func (e *Engine) SubstituteString(s string) (string, error) {
	var out bytes.Buffer
	if err := e.Stream(context.Background(), &out, bytes.NewReader([]byte(s))); err != nil {
		return "", err
	}
	return out.String(), nil
}

// process scans data once, writing completed output to dst and returning
// the tail that may still be the start of a marker. The returned carry is
// never longer than the marker limit.
func (e *Engine) process(dst io.Writer, data []byte) ([]byte, error) {
	i := 0
	for i < len(data) {
		at := bytes.IndexByte(data[i:], '@')
		if at < 0 {
			_, err := dst.Write(data[i:])
			return nil, err
		}
		at += i

		if _, err := dst.Write(data[i:at]); err != nil {
			return nil, err
		}

		// "@" as the final byte: it may open a marker in the next chunk.
		if at+1 >= len(data) {
			return cloneTail(data[at:]), nil
		}

		if data[at+1] != markerOpen[1] {
			if _, err := dst.Write(data[at : at+1]); err != nil {
				return nil, err
			}
			i = at + 1
			continue
		}

		end := bytes.IndexByte(data[at+2:], markerClose)
		if end < 0 {
			if len(data)-(at+2) <= e.markerLimit {
				return cloneTail(data[at:]), nil
			}
			// Cannot close within the key length limit: the "@" is literal.
			if _, err := dst.Write(data[at : at+1]); err != nil {
				return nil, err
			}
			i = at + 1
			continue
		}
		if end > e.markerLimit {
			// A closing brace that far away is page text, not a marker.
			if _, err := dst.Write(data[at : at+1]); err != nil {
				return nil, err
			}
			i = at + 1
			continue
		}

		key := string(data[at+2 : at+2+end])
		if err := e.emit(dst, key); err != nil {
			return nil, err
		}
		i = at + 2 + end + 1
	}
	return nil, nil
}

// emit writes the substitution for one marker.
func (e *Engine) emit(dst io.Writer, key string) error {
	// "@{}" carries no key; pass the marker through untouched.
	if key == "" {
		if _, err := io.WriteString(dst, markerOpen+string(markerClose)); err != nil {
			return err
		}
		return nil
	}

	value, ok := e.table.Lookup(key)
	if !ok {
		e.report.Report(&MissingTranslationError{Locale: e.table.Locale(), Key: key})
		value = missingMarker(key)
	}

	_, err := io.WriteString(dst, value)
	return err
}

// missingMarker renders the developer-visible diagnostic emitted in place of
// an unresolvable token. It is deliberately loud so broken translations are
// obvious in the rendered page instead of silently blank.
func missingMarker(key string) string {
	return "??? " + key + " ???"
}

func cloneTail(tail []byte) []byte {
	out := make([]byte, len(tail))
	copy(out, tail)
	return out
}
