package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestTestObserved(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.InfoLevel)
	lggr.Debugw("hidden")
	Named(lggr, "masking").Infow("visible", "states", 2)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "visible", entry.Message)
	assert.Equal(t, "masking", entry.LoggerName)
	assert.Equal(t, int64(2), entry.ContextMap()["states"])
}

func TestNew(t *testing.T) {
	t.Parallel()

	lggr, err := New(zapcore.WarnLevel)
	require.NoError(t, err)
	require.NotNil(t, lggr)

	cli, err := NewCLI(zapcore.DebugLevel)
	require.NoError(t, err)
	require.NotNil(t, cli)

	Nop().Errorw("dropped")
}
