package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(999), "UNKNOWN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"trace", "TRACE", " Trace "} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, LevelTrace, level)
	}

	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevel_Ordering(t *testing.T) {
	assert.Less(t, LevelTrace, LevelDebug)
	assert.Less(t, LevelDebug, LevelInfo)
	assert.Less(t, LevelInfo, LevelWarn)
	assert.Less(t, LevelWarn, LevelError)
}
