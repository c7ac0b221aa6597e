// Package game provides the session controller and its state machine.
package game

// State represents the current phase of a session.
type State int

const (
	// StateAwaitingName waits for the player to type a username.
	StateAwaitingName State = iota
	// StateHallway lets the player choose a room to enter.
	StateHallway
	// StateInRoom runs the question set of the chosen room.
	StateInRoom
	// StateLevelAdvance moves to the next level after a successful one.
	StateLevelAdvance
	// StateLevelFailed reports a completed but unsuccessful level.
	StateLevelFailed
	// StateSessionEnded reports the outcome and checks the highscore.
	StateSessionEnded
	// StatePlayAgainPrompt asks whether to start over.
	StatePlayAgainPrompt
	// StateTerminated ends the controller loop.
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAwaitingName:
		return "awaiting_name"
	case StateHallway:
		return "hallway"
	case StateInRoom:
		return "in_room"
	case StateLevelAdvance:
		return "level_advance"
	case StateLevelFailed:
		return "level_failed"
	case StateSessionEnded:
		return "session_ended"
	case StatePlayAgainPrompt:
		return "play_again"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
