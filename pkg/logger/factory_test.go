package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validflow/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
		)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "hello")
	})

	t.Run("json formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "test", entry["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v := ctx.Value(ctxKey); v != nil {
					return slog.String("id", v.(string)), true
				}
				return slog.Attr{}, false
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "42", entry["id"])
	})
}

func TestPresets(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithDevelopment("validate"),
			logger.WithOutput(buf),
		)
		log.Debug("msg")
		output := buf.String()
		assert.Contains(t, output, "DEBUG")
		assert.Contains(t, output, "component=validate")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithProduction("validate"),
			logger.WithOutput(buf),
		)
		log.Debug("dropped")
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "validate", entry["component"])
	})
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := logger.ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	_, err := logger.ParseLevel("loud")
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	logger.SetAsDefault(log)
	slog.Info("default")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "default", entry["msg"])
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { logger.Discard().Info("nothing") })
}

func TestInvalidOptionsPanic(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
	assert.Panics(t, func() {
		logger.New(logger.WithLevelName("loud"))
	})
}
