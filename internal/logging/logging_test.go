package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	logger, err := New(Config{Level: "loud", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.log")

	logger, err := New(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, zapcore.DebugLevel)

	logger.Debug("quote computed", zap.String("tier", "tier-2"))

	assert.Contains(t, buf.String(), `"msg":"quote computed"`)
	assert.Contains(t, buf.String(), `"tier":"tier-2"`)
}

func TestInitializeReplacesGlobal(t *testing.T) {
	prev := Logger
	t.Cleanup(func() {
		Logger = prev
		Sugar = prev.Sugar()
	})

	require.NoError(t, Initialize(Config{Level: "error", Format: "console", Output: "stdout"}))
	assert.NotSame(t, prev, Logger)
	assert.False(t, Logger.Core().Enabled(zapcore.WarnLevel))
}
