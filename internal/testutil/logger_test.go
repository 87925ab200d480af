package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingLogger(t *testing.T) {
	logger, recs := NewRecordingLogger(t, slog.LevelInfo)
	logger = logger.With("run_id", "abc")

	logger.Debug("dropped")
	logger.Info("kept", "a", 238)
	logger.Warn("careful")

	all := recs.All()
	require.Len(t, all, 2)
	assert.Equal(t, []string{"careful"}, recs.AtLevel(slog.LevelWarn))

	v, ok := Attr(all[0], "a")
	require.True(t, ok)
	assert.Equal(t, int64(238), v.Int64())

	v, ok = Attr(all[1], "run_id")
	require.True(t, ok)
	assert.Equal(t, "abc", v.String())

	_, ok = Attr(all[1], "missing")
	assert.False(t, ok)
}
