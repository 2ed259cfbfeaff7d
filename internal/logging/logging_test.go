package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	log, closer, err := New(Config{})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.WithField("stage", "hook").Debug("playback transition")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "playback transition", entry["msg"])
	assert.Equal(t, "hook", entry["stage"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viralquiz.log")
	log, closer, err := New(Config{File: path})
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNew_Errors(t *testing.T) {
	_, _, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	_, _, err = New(Config{Format: "xml"})
	assert.Error(t, err)
}

func TestWithContext_RequestID(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	ctx := NewContext(context.Background(), log)
	ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-42")

	WithContext(ctx).Info("handled")

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "req-42", hook.LastEntry().Data["request_id"])
}

func TestWithContext_FallsBackToStandardLogger(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), WithContext(context.Background()))
}
