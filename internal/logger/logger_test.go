package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOptions_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOptions(&buf, int(slog.LevelInfo), true, "habiro")

	l.Info("hello", "room", "a_b")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "habiro", record["service"])
	assert.Equal(t, "a_b", record["room"])
}

func TestNewWithOptions_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOptions(&buf, int(slog.LevelWarn), false, "")

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOptions(&buf, 0, false, "").With("component", "hub")

	l.Info("joined")
	assert.Contains(t, buf.String(), "component=hub")
}
