package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level LogLevel) (*Logger, *bytes.Buffer) {
	t.Helper()

	l, err := New(level, filepath.Join(t.TempDir(), "test.log"), false)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	buf := &bytes.Buffer{}
	l.logger.SetOutput(buf)
	return l, buf
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "FATAL", LevelFatal.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, parseLevel("debug"))
	assert.Equal(t, LevelWarn, parseLevel("warning"))
	assert.Equal(t, LevelInfo, parseLevel("garbage"))
}

func TestLoggerFiltering(t *testing.T) {
	t.Run("should suppress messages below the configured level", func(t *testing.T) {
		l, buf := newTestLogger(t, LevelWarn)

		l.log(LevelDebug, "", "debug message")
		l.log(LevelInfo, "", "info message")
		assert.Empty(t, buf.String())

		l.log(LevelWarn, "", "warn message")
		assert.Contains(t, buf.String(), "[WARN] warn message")
	})

	t.Run("should include component prefix", func(t *testing.T) {
		l, buf := newTestLogger(t, LevelDebug)

		l.log(LevelInfo, "stream", "exchange opened")
		assert.Contains(t, buf.String(), "[INFO] [stream] exchange opened")
	})
}

func TestFormatKeyvals(t *testing.T) {
	t.Run("should render pairs", func(t *testing.T) {
		out := formatKeyvals([]interface{}{"status", 200, "chunks", 3})
		assert.Equal(t, "status=200 chunks=3", out)
	})

	t.Run("should tolerate a dangling key", func(t *testing.T) {
		out := formatKeyvals([]interface{}{"orphan"})
		assert.Equal(t, "orphan=?", out)
	})
}

func TestWithComponent(t *testing.T) {
	t.Run("should be safe before Init", func(t *testing.T) {
		prev := defaultLogger
		defaultLogger = nil
		defer func() { defaultLogger = prev }()

		log := WithComponent("agent")
		assert.NotPanics(t, func() {
			log.Debug("no default logger", "key", "value")
			log.Error("still fine")
		})
	})
}
