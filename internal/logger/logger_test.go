package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mind-engage/netdefense-quiz/internal/config"
	"github.com/mind-engage/netdefense-quiz/internal/logger"
)

func TestNew_Level(t *testing.T) {
	lg, err := logger.New(config.Config{AppEnv: "production", LogLevel: "warn"})
	require.NoError(t, err)
	assert.False(t, lg.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, lg.Core().Enabled(zapcore.WarnLevel))

	lg, err = logger.New(config.Config{LogLevel: "bogus"})
	require.NoError(t, err)
	assert.True(t, lg.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, lg.Core().Enabled(zapcore.DebugLevel))
}
