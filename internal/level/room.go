package level

import (
	"fmt"

	"github.com/samdwyer/littleprofessor/internal/input"
	"github.com/samdwyer/littleprofessor/internal/question"
)

// RoomID identifies one of the fixed rooms of the house.
type RoomID int

const (
	Hallway RoomID = iota
	Left
	Up
	Right
	Down

	roomCount
)

// String returns the identifier used in level definitions.
func (id RoomID) String() string {
	switch id {
	case Hallway:
		return "hallway"
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseRoomID maps a definition identifier to its RoomID.
func ParseRoomID(s string) (RoomID, error) {
	for id := Hallway; id < roomCount; id++ {
		if id.String() == s {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown room %q", s)
}

// Room is an immutable entry of the room table.
type Room struct {
	ID        RoomID
	Operation question.Operator // empty for the Hallway
	Column    int               // anchor of the panel in the house grid
	Row       int
	Command   input.Command
}

// IsHallway reports whether the room is the central, operation-less room.
func (r Room) IsHallway() bool {
	return r.ID == Hallway
}

// Label is the short text drawn inside the room's panel.
func (r Room) Label() string {
	if r.IsHallway() {
		return "--"
	}
	return r.Operation.String()
}

var rooms = [roomCount]Room{
	Hallway: {ID: Hallway, Column: 23, Row: 8},
	Left:    {ID: Left, Operation: question.Add, Column: 5, Row: 8, Command: input.CommandLeft},
	Up:      {ID: Up, Operation: question.Subtract, Column: 23, Row: 3, Command: input.CommandUp},
	Right:   {ID: Right, Operation: question.Multiply, Column: 41, Row: 8, Command: input.CommandRight},
	Down:    {ID: Down, Operation: question.Divide, Column: 23, Row: 13, Command: input.CommandDown},
}

// RoomByID returns the table entry for id.
func RoomByID(id RoomID) (Room, bool) {
	if id < 0 || id >= roomCount {
		return Room{}, false
	}
	return rooms[id], true
}

// AllRooms returns every room of the house, Hallway first.
func AllRooms() []Room {
	all := make([]Room, len(rooms))
	copy(all, rooms[:])
	return all
}
