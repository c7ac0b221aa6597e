package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "users.txt", cfg.UserFile)
	assert.Equal(t, 5, cfg.QuestionsPerRoom)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Telemetry)
	assert.False(t, cfg.Plain)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("LP_USER_FILE", "/tmp/scores")
	t.Setenv("LP_QUESTIONS_PER_ROOM", "3")
	t.Setenv("LP_TICK_INTERVAL", "250ms")
	t.Setenv("LP_SEED", "42")
	t.Setenv("LP_PLAIN", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	g := cfg.Game()
	assert.Equal(t, 3, g.QuestionsPerRoom)
	assert.Equal(t, 250*time.Millisecond, g.TickInterval)
	assert.Equal(t, int64(42), g.Seed)
	assert.Equal(t, "/tmp/scores", cfg.UserFile)
	assert.True(t, cfg.Plain)
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LP_QUESTIONS_PER_ROOM", "0"},
		{"LP_QUESTIONS_PER_ROOM", "many"},
		{"LP_TICK_INTERVAL", "-1s"},
		{"LP_ACCENT_COLOR", "yellow"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	cfg.UserFile = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
