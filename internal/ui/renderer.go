package ui

import (
	"strings"

	"github.com/samdwyer/littleprofessor/internal/house"
)

const promptPrefix = "> "

// View is everything shown on the terminal at one moment.
type View struct {
	Grid  house.Grid
	Log   []Line
	Input string
}

// Line is one entry of the message log.
type Line struct {
	Text  string
	Error bool
}

// Renderer handles drawing the game to the screen: the house on top, the
// newest messages below it and the input line at the bottom.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render redraws the whole view.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	_, height := r.screen.Size()

	y := 0
	for _, row := range v.Grid {
		if y >= height-1 {
			break
		}
		r.screen.DrawText(0, y, row, r.palette.Grid)
		y++
	}
	if len(v.Grid) > 0 {
		y++
	}

	for _, line := range visibleLog(v.Log, height-1-y) {
		style := r.palette.Message
		if line.Error {
			style = r.palette.Error
		}
		r.screen.DrawText(0, y, line.Text, style)
		y++
	}

	if height > 0 {
		r.screen.DrawText(0, height-1, promptPrefix+v.Input, r.palette.Prompt)
	}
	r.screen.Show()
}

// visibleLog returns the newest lines that fit in rows.
func visibleLog(log []Line, rows int) []Line {
	if rows <= 0 {
		return nil
	}
	if len(log) > rows {
		return log[len(log)-rows:]
	}
	return log
}

// splitLines turns a possibly multi-line message into log lines.
func splitLines(text string, isError bool) []Line {
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line{Text: p, Error: isError}
	}
	return lines
}
