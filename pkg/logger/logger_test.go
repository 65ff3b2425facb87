package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-typedqueue/pkg/settings"
)

func TestNewWithWriter_Level(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"default_is_info", "", false, true},
		{"debug", "debug", true, true},
		{"error", "error", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := NewWithWriter(settings.Logger{LogLevel: tt.level}, &buf)
			require.NoError(t, err)

			log.Debug("debug line")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			log.Info("info line")
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info line")))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(settings.Logger{}, &buf)
	require.NoError(t, err)

	log.Info("ran", zap.String("script", "demo"), zap.Int("steps", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ran", entry["msg"])
	assert.Equal(t, "demo", entry["script"])
	assert.EqualValues(t, 3, entry["steps"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typedqueue.log")
	var buf bytes.Buffer
	log, err := NewWithWriter(settings.Logger{FileLogName: path, MaxSize: 1}, &buf)
	require.NoError(t, err)

	log.Warn("to both sinks")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both sinks")
	assert.Contains(t, buf.String(), "to both sinks")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(settings.Logger{LogLevel: "loud"})
	assert.Error(t, err)
}
