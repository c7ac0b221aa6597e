package level

import (
	"errors"
	"fmt"

	"github.com/samdwyer/littleprofessor/internal/gamedata"
	"github.com/samdwyer/littleprofessor/internal/question"
)

// Catalog is the fixed, ordered list of levels.
type Catalog struct {
	levels []*Level
}

// NewCatalog creates a catalog from already built levels.
func NewCatalog(levels []*Level) *Catalog {
	return &Catalog{levels: levels}
}

// LoadCatalog builds the catalog from the embedded levels.json.
func LoadCatalog(src question.Source) (*Catalog, error) {
	defs, err := gamedata.LoadLevels()
	if err != nil {
		return nil, err
	}
	return BuildCatalog(defs, src)
}

// BuildCatalog turns level definitions into levels sharing src.
func BuildCatalog(defs []gamedata.LevelDef, src question.Source) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, errors.New("no levels defined")
	}
	levels := make([]*Level, 0, len(defs))
	for _, def := range defs {
		difficulty, err := ParseDifficulty(def.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", def.Name, err)
		}
		roomList := make([]Room, 0, len(def.Rooms))
		for _, name := range def.Rooms {
			id, err := ParseRoomID(name)
			if err != nil {
				return nil, fmt.Errorf("level %s: %w", def.Name, err)
			}
			r, _ := RoomByID(id)
			roomList = append(roomList, r)
		}
		lvl, err := New(def.Name, difficulty, roomList, src)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return NewCatalog(levels), nil
}

// Levels returns all levels in play order.
func (c *Catalog) Levels() []*Level {
	return c.levels
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.levels)
}
