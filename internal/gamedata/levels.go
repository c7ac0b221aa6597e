package gamedata

// LevelDef defines a level loaded from JSON.
type LevelDef struct {
	Name       string   `json:"name"`       // Display name shown in the house footer
	Difficulty string   `json:"difficulty"` // beginner, intermediate or advanced
	Rooms      []string `json:"rooms"`      // Room identifiers, hallway first
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}

// Layouts is the embedded source of house layouts.
type Layouts struct{}

// Layout returns the rows of the named layout ("entrance", "hallway").
func (Layouts) Layout(name string) ([]string, error) {
	return LoadLines(name + ".txt")
}
