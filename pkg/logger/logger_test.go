package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("chatty"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestNew(t *testing.T) {
	l, err := New("error", false)
	require.NoError(t, err)
	l.With("component", "test").Infof("suppressed %d", 1)
}

func TestNopDiscards(t *testing.T) {
	l := NewNop().With("k", "v")
	l.Debugf("x")
	l.Infow("y", "a", 1)
	assert.NoError(t, l.Sync())
}
