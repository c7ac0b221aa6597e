package game

import (
	"context"

	"github.com/samdwyer/littleprofessor/internal/house"
	"github.com/samdwyer/littleprofessor/internal/input"
	"github.com/samdwyer/littleprofessor/internal/level"
	"github.com/samdwyer/littleprofessor/internal/player"
	"github.com/samdwyer/littleprofessor/internal/question"
)

// Display is everything the controller shows to and reads from the player.
// Every method that reads input returns input.ErrQuit once the player typed
// the quit token.
type Display interface {
	Welcome()
	RequestUsername() (string, error)
	// Navigate returns input.CommandUnknown after reporting invalid input.
	Navigate(lvl *level.Level) (input.Command, error)
	ShowHouse(grid house.Grid)
	EnterRoom(room level.Room)
	AskQuestion(room level.Room, q question.Question) (string, error)
	ShowSolution(answer string)
	Help()
	TimeIsUp()
	LevelFailed()
	LevelAdvanced(lvl *level.Level)
	NewHighscore(highscore int)
	GameEnded(success bool, score int)
	// PlayAgain reports whether the player answered yes.
	PlayAgain() (bool, error)
	Goodbye()
	ReportError(err error)
}

// UserStore loads and saves players by name.
type UserStore interface {
	// Load returns a fresh user when name is not on record.
	Load(ctx context.Context, name string) (*player.User, error)
	// Store upserts the user, keeping every other record.
	Store(ctx context.Context, u *player.User) error
}

// LevelSource provides the ordered, fixed list of levels.
type LevelSource interface {
	Levels() []*level.Level
}
