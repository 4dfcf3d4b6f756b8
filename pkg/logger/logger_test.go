package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bladekit/bladekit/pkg/logger"
)

type ctxKey struct{}

func TestNewWithOutput(t *testing.T) {
	t.Parallel()

	t.Run("injects extracted attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithOutput(&buf, slog.LevelInfo, func(ctx context.Context) (slog.Attr, bool) {
			if v, ok := ctx.Value(ctxKey{}).(string); ok {
				return slog.String("locale", v), true
			}
			return slog.Attr{}, false
		})

		ctx := context.WithValue(context.Background(), ctxKey{}, "de")
		log.InfoContext(ctx, "hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "de", entry["locale"])
	})

	t.Run("skips extractors that miss", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithOutput(&buf, slog.LevelInfo, func(context.Context) (slog.Attr, bool) {
			return slog.Attr{}, false
		})

		log.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		_, present := entry["locale"]
		assert.False(t, present)
	})

	t.Run("respects the level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithOutput(&buf, slog.LevelWarn)
		log.Info("dropped")
		assert.Zero(t, buf.Len())
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()
	log := logger.NewNope()
	require.NotNil(t, log)
	log.Info("discarded")
}
