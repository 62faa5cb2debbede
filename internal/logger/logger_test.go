package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"authentiqa/internal/config"
	"authentiqa/internal/logger"
)

func TestNew_Level(t *testing.T) {
	l, err := logger.New(config.LogConfig{Level: "warn", Format: "json"})

	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.Same(t, l, zap.L())
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	l, err := logger.New(config.LogConfig{Level: "loud", Format: "console"})

	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}
