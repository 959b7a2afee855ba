package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/crampton-estate/internal/config"
)

func TestSetup_TextInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&config.Config{Environment: "development", LogLevel: slog.LevelInfo}, &buf)

	log.Debug("hidden")
	log.Info("visible", "room", "library")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=visible")
	assert.Contains(t, out, "room=library")
}

func TestSetup_JSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&config.Config{Environment: "production", LogLevel: slog.LevelDebug}, &buf)

	id := uuid.New()
	WithError(WithSession(log, id), errors.New("boom")).Debug("failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "failed", entry["msg"])
	assert.Equal(t, id.String(), entry["session_id"])
	assert.Equal(t, "boom", entry["error"])
}

func TestOpen(t *testing.T) {
	w, closeFn, err := Open(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "haunt.log")
	w, closeFn, err = Open(&config.Config{LogFile: path})
	require.NoError(t, err)
	_, err = w.Write([]byte("entry\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "entry\n", string(data))

	_, _, err = Open(&config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "haunt.log")})
	assert.Error(t, err)
}
