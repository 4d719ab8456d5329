package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "FATAL", LevelFatal.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var records []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		record := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}
	return records
}

func TestAxLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "json", Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "dropped")
	logger.WithComponent("inspector").With("file", "index.html").
		Info(ctx, "inspected", "entries", 3)
	logger.Error(ctx, errors.New("boom"), "failed", "dangling")

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)

	assert.Equal(t, "inspected", records[0]["msg"])
	assert.Equal(t, "INFO", records[0]["level"])
	assert.Equal(t, "inspector", records[0]["component"])
	assert.Equal(t, "index.html", records[0]["file"])
	assert.Equal(t, float64(3), records[0]["entries"])

	assert.Equal(t, "ERROR", records[1]["level"])
	assert.Equal(t, "boom", records[1]["error"])
	assert.NotContains(t, records[1], "dangling")
}

func TestAxLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelError, Format: "json", Output: &buf})
	ctx := context.Background()

	logger.Info(ctx, "info")
	logger.Warn(ctx, nil, "warn")
	logger.Error(ctx, nil, "error")
	logger.Fatal(ctx, errors.New("stop"), "fatal")

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "error", records[0]["msg"])
	assert.Equal(t, "fatal", records[1]["msg"])
	assert.Equal(t, true, records[1]["fatal"])
}

func TestWithDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "json", Output: &buf})
	_ = base.With("request", "a")

	base.Info(context.Background(), "plain")
	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.NotContains(t, records[0], "request")
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()

	fileLogger, err := NewFileLogger(&LoggerConfig{Level: LevelDebug, Format: "json"}, dir)
	require.NoError(t, err)

	fileLogger.Info(context.Background(), "to file")
	require.NoError(t, fileLogger.Close())

	assert.True(t, strings.HasPrefix(fileLogger.Path(), dir))
	assert.Contains(t, fileLogger.Path(), "axname-")

	data, err := os.ReadFile(fileLogger.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewFileLoggerBadDirectory(t *testing.T) {
	file := t.TempDir() + "/occupied"
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewFileLogger(nil, file)
	assert.Error(t, err)
}

// recordingLogger counts calls per level.
type recordingLogger struct {
	calls     map[string]int
	component string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{calls: map[string]int{}}
}

func (r *recordingLogger) Debug(context.Context, string, ...interface{}) { r.calls["debug"]++ }
func (r *recordingLogger) Info(context.Context, string, ...interface{})  { r.calls["info"]++ }
func (r *recordingLogger) Warn(context.Context, error, string, ...interface{}) {
	r.calls["warn"]++
}
func (r *recordingLogger) Error(context.Context, error, string, ...interface{}) {
	r.calls["error"]++
}
func (r *recordingLogger) Fatal(context.Context, error, string, ...interface{}) {
	r.calls["fatal"]++
}
func (r *recordingLogger) With(...interface{}) Logger { return r }
func (r *recordingLogger) WithComponent(component string) Logger {
	r.component = component
	return r
}

func TestMultiLogger(t *testing.T) {
	first, second := newRecordingLogger(), newRecordingLogger()
	multi := NewMultiLogger(first, second)
	ctx := context.Background()

	scoped := multi.WithComponent("watcher").With("path", "x")
	scoped.Debug(ctx, "d")
	scoped.Info(ctx, "i")
	scoped.Warn(ctx, nil, "w")
	scoped.Error(ctx, nil, "e")
	scoped.Fatal(ctx, nil, "f")

	for _, r := range []*recordingLogger{first, second} {
		assert.Equal(t, "watcher", r.component)
		for _, level := range []string{"debug", "info", "warn", "error", "fatal"} {
			assert.Equal(t, 1, r.calls[level], level)
		}
	}
}

func TestPerfLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})
	ctx := context.Background()

	logger.StartOperation("inspect").End(ctx, "entries", 2)
	StartOperation(logger, "audit").EndWithError(ctx, errors.New("parse"))

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)

	assert.Equal(t, "Operation completed", records[0]["msg"])
	assert.Equal(t, "inspect", records[0]["operation"])
	assert.Contains(t, records[0], "duration_ms")
	assert.Equal(t, float64(2), records[0]["entries"])

	assert.Equal(t, "Operation failed", records[1]["msg"])
	assert.Equal(t, "audit", records[1]["operation"])
	assert.Equal(t, "parse", records[1]["error"])
}
