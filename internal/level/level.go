package level

import (
	"errors"
	"fmt"

	"github.com/samdwyer/littleprofessor/internal/input"
	"github.com/samdwyer/littleprofessor/internal/question"
)

// PointsPerRoom is the share of a room's questions needed to pass.
const PointsPerRoom = 4

// secondsPerQuestion is the time budget per question, in ticks.
const secondsPerQuestion = 10

// ErrInvalidLevel is returned for room lists that break the Hallway rules.
var ErrInvalidLevel = errors.New("level: invalid room list")

// Level is one stage of the game: a tier and the rooms that are open in it.
type Level struct {
	name       string
	difficulty Difficulty
	rooms      []Room
	generator  *question.Generator
}

// New creates a level. rooms must start with the Hallway, contain it
// exactly once and list every other room at most once.
func New(name string, difficulty Difficulty, rooms []Room, src question.Source) (*Level, error) {
	if len(rooms) == 0 || !rooms[0].IsHallway() {
		return nil, fmt.Errorf("%w: level %s must start with the hallway", ErrInvalidLevel, name)
	}
	seen := make(map[RoomID]bool, len(rooms))
	for _, r := range rooms {
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: level %s lists %s twice", ErrInvalidLevel, name, r.ID)
		}
		seen[r.ID] = true
	}
	return &Level{
		name:       name,
		difficulty: difficulty,
		rooms:      rooms,
		generator:  question.NewGenerator(src),
	}, nil
}

// Name returns the level's display name.
func (l *Level) Name() string { return l.name }

// Difficulty returns the level's tier.
func (l *Level) Difficulty() Difficulty { return l.difficulty }

// Rooms returns the rooms in declaration order, Hallway first.
func (l *Level) Rooms() []Room { return l.rooms }

// MinPoints is the score that must be gained within the level to pass it.
func (l *Level) MinPoints() int {
	return (len(l.rooms) - 1) * PointsPerRoom
}

// TimeBudget is the number of ticks granted for the level.
func (l *Level) TimeBudget(questionsPerRoom int) int {
	return (len(l.rooms) - 1) * questionsPerRoom * secondsPerQuestion
}

// ValidCommands lists the room commands in declaration order followed by
// Help and Quit.
func (l *Level) ValidCommands() []input.Command {
	cmds := make([]input.Command, 0, len(l.rooms)+1)
	for _, r := range l.rooms[1:] {
		cmds = append(cmds, r.Command)
	}
	return append(cmds, input.CommandHelp, input.CommandQuit)
}

// RoomFor returns the room entered by cmd.
func (l *Level) RoomFor(cmd input.Command) (Room, bool) {
	for _, r := range l.rooms[1:] {
		if r.Command == cmd {
			return r, true
		}
	}
	return Room{}, false
}

// Question generates a question for room using the level's domain.
func (l *Level) Question(room Room) (question.Question, error) {
	q, err := l.generator.Generate(room.Operation, l.difficulty.Domain())
	if err != nil {
		return question.Question{}, fmt.Errorf("level %s, room %s: %w", l.name, room.ID, err)
	}
	return q, nil
}

// Answer returns the answer to the last generated question.
func (l *Level) Answer() string {
	return l.generator.Answer()
}
