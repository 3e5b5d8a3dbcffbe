package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "ride-search"}, &buf)

	log.Info().Str("key", "value").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "ride-search", entry["service"])
	assert.Contains(t, entry, "time")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json"}, &buf)

	log.Debug().Msg("dropped")
	log.Info().Msg("dropped too")
	log.Warn().Msg("kept")

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestNewWithOutput_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "shouting", Format: "json"}, &buf)

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console"}, &buf)

	log.Info().Msg("console line")

	// Console output is human-readable, not JSON.
	assert.Contains(t, buf.String(), "console line")
	assert.Error(t, json.Unmarshal(buf.Bytes(), &map[string]any{}))
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	log.WithRequestID("req-123").WithStore("memory").Info().Msg("context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "memory", entry["store"])
}

func TestNop_ProducesNoOutput(t *testing.T) {
	log := Nop()

	// Must not panic and must be fully disabled.
	log.Error().Msg("silent")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestGlobal_LazyInitialization(t *testing.T) {
	SetGlobal(nil)
	t.Cleanup(func() { SetGlobal(nil) })

	assert.NotPanics(t, func() { Info().Msg("lazy") })
	assert.NotNil(t, Global)
}

func TestSetGlobal(t *testing.T) {
	var buf bytes.Buffer
	custom := NewWithOutput(Config{Level: "debug", Format: "json"}, &buf)
	SetGlobal(custom)
	t.Cleanup(func() { SetGlobal(nil) })

	Debug().Msg("through global")

	assert.Contains(t, buf.String(), "through global")
}
