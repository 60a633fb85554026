package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("dev", "debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = NewLogger("prod", "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = NewLogger("", "error")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLoggerErrors(t *testing.T) {
	_, err := NewLogger("staging", "")
	assert.Error(t, err)

	_, err = NewLogger("dev", "loud")
	assert.Error(t, err)
}
