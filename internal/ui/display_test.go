package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/littleprofessor/internal/game"
	"github.com/samdwyer/littleprofessor/internal/house"
	"github.com/samdwyer/littleprofessor/internal/input"
	"github.com/samdwyer/littleprofessor/internal/level"
	"github.com/samdwyer/littleprofessor/internal/question"
)

var _ game.Display = (*Display)(nil)

func newStreamDisplay(in string) (*Display, *bytes.Buffer) {
	var out bytes.Buffer
	return NewDisplay(NewStreamIO(strings.NewReader(in), &out)), &out
}

func testLevel(t *testing.T) *level.Level {
	t.Helper()
	hallway, _ := level.RoomByID(level.Hallway)
	left, _ := level.RoomByID(level.Left)
	up, _ := level.RoomByID(level.Up)
	lvl, err := level.New("1", level.Beginner, []level.Room{hallway, left, up}, question.FixedSource{IntValue: 3})
	require.NoError(t, err)
	return lvl
}

func TestRequestUsernameRepromptsUntilValid(t *testing.T) {
	d, out := newStreamDisplay("ab\nTim42\nTimmy\n")

	name, err := d.RequestUsername()
	require.NoError(t, err)
	assert.Equal(t, "Timmy", name)
	assert.Contains(t, out.String(), "at least 3 chars")
	assert.Contains(t, out.String(), "only contain upper and lowercase letters")
}

func TestRequestUsernameQuit(t *testing.T) {
	d, _ := newStreamDisplay("quit\n")
	_, err := d.RequestUsername()
	assert.ErrorIs(t, err, input.ErrQuit)
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		line     string
		expected input.Command
	}{
		{"left", input.CommandLeft},
		{"UP", input.CommandUp},
		{" help ", input.CommandHelp},
		{"down", input.CommandUnknown},
		{"sideways", input.CommandUnknown},
	}

	for _, tt := range tests {
		d, out := newStreamDisplay(tt.line + "\n")
		got, err := d.Navigate(testLevel(t))
		require.NoError(t, err)
		if got != tt.expected {
			t.Errorf("Navigate(%q) = %q, want %q", tt.line, got, tt.expected)
		}
		if tt.expected == input.CommandUnknown {
			assert.Contains(t, out.String(), msgInvalidCommand)
		}
	}
}

func TestNavigateListsCommands(t *testing.T) {
	d, out := newStreamDisplay("left\n")
	_, err := d.Navigate(testLevel(t))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "LEFT: left\nUP: up\nHELP: help\nQUIT: quit")
	assert.NotContains(t, out.String(), "DOWN")
}

func TestEndOfInputQuits(t *testing.T) {
	d, _ := newStreamDisplay("")
	_, err := d.Navigate(testLevel(t))
	assert.ErrorIs(t, err, input.ErrQuit)
}

func TestAskQuestion(t *testing.T) {
	room, _ := level.RoomByID(level.Left)
	q := question.Question{Prompt: "3 + 3", Answer: "6"}

	d, out := newStreamDisplay("6\nquit\n")
	answer, err := d.AskQuestion(room, q)
	require.NoError(t, err)
	assert.Equal(t, "6", answer)
	assert.Contains(t, out.String(), "Solve: 3 + 3")

	_, err = d.AskQuestion(room, q)
	assert.ErrorIs(t, err, input.ErrQuit)
}

func TestPlayAgain(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"yes", false},
	}

	for _, tt := range tests {
		d, _ := newStreamDisplay(tt.line + "\n")
		got, err := d.PlayAgain()
		require.NoError(t, err)
		if got != tt.expected {
			t.Errorf("PlayAgain() with %q = %v, want %v", tt.line, got, tt.expected)
		}
	}
}

func TestNotifications(t *testing.T) {
	d, out := newStreamDisplay("")
	room, _ := level.RoomByID(level.Right)

	d.ShowHouse(house.Grid{"#####", "# 1 #"})
	d.EnterRoom(room)
	d.ShowSolution("2.3")
	d.LevelAdvanced(testLevel(t))
	d.NewHighscore(14)
	d.GameEnded(true, 14)
	d.GameEnded(false, 3)
	d.ReportError(errors.New("disk full"))

	text := out.String()
	assert.Contains(t, text, "#####\n# 1 #\n")
	assert.Contains(t, text, "operation *.")
	assert.Contains(t, text, "Solution: 2.3")
	assert.Contains(t, text, "Welcome to level 1")
	assert.Contains(t, text, "gain 8 additional points")
	assert.Contains(t, text, "HIGHSCORE: 14")
	assert.Contains(t, text, "following score: 14")
	assert.Contains(t, text, "with a score of 3.")
	assert.Contains(t, text, "disk full")
}
