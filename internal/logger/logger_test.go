package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "verbose-ish"})
	require.Error(t, err)
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"preset": "modern-minimal"}).Info("preset applied")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "modern-minimal", entry["preset"])
	assert.Equal(t, "preset applied", entry["message"])
}

func TestWithComponentTagsEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.WithComponent("provider").Warn("unknown preset id")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "provider", entry["component"])
}

func TestDefaultLevelSuppressesInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	log.Info("should be silent")
	assert.Empty(t, buf.Bytes())

	log.Error(errors.New("boom"), "should be written")
	assert.NotEmpty(t, buf.Bytes())
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Info("noop")
	log.Debug("noop")
	log.Warn("noop")
	log.Error(nil, "noop")
	assert.Nil(t, log.WithFields(map[string]any{"a": 1}))
	assert.Nil(t, log.WithComponent("x"))
}
