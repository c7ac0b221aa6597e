// Package input parses the player's typed commands and username.
package input

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrQuit is returned by every prompt once the player typed the quit
	// token. It unwinds the current activity and ends the process.
	ErrQuit = errors.New("input: player quit")

	// ErrInvalidCommand is returned when the input matches no accepted command.
	ErrInvalidCommand = errors.New("input: invalid command")
)

// Command is a word the player can type at a prompt.
type Command string

const (
	CommandQuit    Command = "quit"
	CommandHelp    Command = "help"
	CommandLeft    Command = "left"
	CommandRight   Command = "right"
	CommandUp      Command = "up"
	CommandDown    Command = "down"
	CommandYes     Command = "y"
	CommandUnknown Command = "?"
)

// String returns the command word.
func (c Command) String() string {
	return string(c)
}

// ParseCommand matches the trimmed input against the accepted commands.
func ParseCommand(accepted []Command, raw string) (Command, error) {
	word := strings.TrimSpace(raw)
	for _, c := range accepted {
		if string(c) == word {
			return c, nil
		}
	}
	return CommandUnknown, fmt.Errorf("%w: %q", ErrInvalidCommand, word)
}

// IsQuit reports whether raw is the quit token.
func IsQuit(raw string) bool {
	return strings.TrimSpace(raw) == string(CommandQuit)
}
