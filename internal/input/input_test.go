package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var navigation = []Command{CommandLeft, CommandUp, CommandHelp, CommandQuit}

func TestParseCommandTrimsSpaces(t *testing.T) {
	tests := []struct {
		raw  string
		want Command
	}{
		{"  left     ", CommandLeft},
		{"up", CommandUp},
		{"\thelp\n", CommandHelp},
		{"quit", CommandQuit},
	}

	for _, tt := range tests {
		got, err := ParseCommand(navigation, tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseCommandRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "d0wn", "down", "SomethingSeemsToBeWrong"} {
		got, err := ParseCommand(navigation, raw)
		assert.ErrorIs(t, err, ErrInvalidCommand, raw)
		assert.Equal(t, CommandUnknown, got)
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit("quit"))
	assert.True(t, IsQuit("  quit "))
	assert.False(t, IsQuit("QUIT!"))
	assert.False(t, IsQuit("q"))
}

func TestParseName(t *testing.T) {
	name, err := ParseName(" Cellestine    ")
	require.NoError(t, err)
	assert.Equal(t, "Cellestine", name)

	for _, ok := range []string{"Tim", "ThisUsername"} {
		_, err := ParseName(ok)
		assert.NoError(t, err, ok)
	}
}

func TestParseNameRejects(t *testing.T) {
	for _, bad := range []string{"Jo", "ThisUsernameHasTooManyChars", "Tim3", "Ann+1", "  "} {
		_, err := ParseName(bad)
		var nameErr *NameError
		assert.ErrorAs(t, err, &nameErr, bad)
	}
}
