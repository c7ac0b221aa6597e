package house

import (
	"fmt"

	"github.com/samdwyer/littleprofessor/internal/level"
)

const (
	panelWidth  = 16
	labelRow    = 2
	labelOffset = 6
)

var openPanel = [...]string{
	"################",
	"#              #",
	"#              #",
	"#              #",
	"################",
}

var completedPanel = [...]string{
	"################",
	"################",
	"################",
	"################",
	"################",
}

// PanelLines returns the panel of a room with its label written in.
func PanelLines(room level.Room, completed bool) []string {
	src := openPanel
	if completed {
		src = completedPanel
	}
	lines := make([]string, len(src))
	for i, line := range src {
		if i == labelRow {
			line = withLabel(line, room.Label())
		}
		lines[i] = line
	}
	return lines
}

func withLabel(line, label string) string {
	end := labelOffset + len(label)
	if end > len(line) {
		end = len(line)
		label = label[:end-labelOffset]
	}
	return line[:labelOffset] + label + line[end:]
}

// overlay writes the room's panel at its anchor.
func (h *House) overlay(room level.Room, completed bool) error {
	lines := PanelLines(room, completed)
	if room.Row < 0 || room.Column < 0 || room.Row+len(lines) > len(h.rows) {
		return fmt.Errorf("%w: %s panel at row %d", ErrOutOfBounds, room.ID, room.Row)
	}
	for i := range lines {
		if room.Column+panelWidth > len(h.rows[room.Row+i]) {
			return fmt.Errorf("%w: %s panel at column %d", ErrOutOfBounds, room.ID, room.Column)
		}
	}
	for i, line := range lines {
		row := h.rows[room.Row+i]
		h.rows[room.Row+i] = row[:room.Column] + line + row[room.Column+panelWidth:]
	}
	return nil
}
