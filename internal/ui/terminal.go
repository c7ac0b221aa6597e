package ui

import (
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/littleprofessor/internal/house"
	"github.com/samdwyer/littleprofessor/internal/input"
)

// maxLogLines bounds the message history kept for redraws.
const maxLogLines = 200

// TerminalIO is the full-screen tcell backend. Esc and Ctrl-C quit.
type TerminalIO struct {
	screen   *Screen
	renderer *Renderer
	view     View
	input    []rune
}

// NewTerminalIO opens the terminal screen.
func NewTerminalIO(palette Palette) (*TerminalIO, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminalIO(screen, palette), nil
}

func newTerminalIO(screen *Screen, palette Palette) *TerminalIO {
	return &TerminalIO{
		screen:   screen,
		renderer: NewRenderer(screen, palette),
	}
}

// ShowGrid replaces the house picture.
func (t *TerminalIO) ShowGrid(grid house.Grid) {
	t.view.Grid = grid
	t.render()
}

// Print appends a message to the log.
func (t *TerminalIO) Print(text string) {
	t.appendLog(splitLines(text, false))
}

// PrintError appends an error message to the log.
func (t *TerminalIO) PrintError(text string) {
	t.appendLog(splitLines(text, true))
}

// ReadLine edits the input line until Enter is pressed.
func (t *TerminalIO) ReadLine() (string, error) {
	t.render()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF
		case *tcell.EventResize:
			t.screen.Sync()
			t.render()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", input.ErrQuit
			case tcell.KeyEnter:
				line := string(t.input)
				t.input = t.input[:0]
				t.appendLog([]Line{{Text: promptPrefix + line}})
				return line, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(t.input) > 0 {
					t.input = t.input[:len(t.input)-1]
				}
			case tcell.KeyRune:
				t.input = append(t.input, ev.Rune())
			}
			t.render()
		}
	}
}

// Close restores the terminal.
func (t *TerminalIO) Close() error {
	t.screen.Close()
	return nil
}

func (t *TerminalIO) appendLog(lines []Line) {
	t.view.Log = append(t.view.Log, lines...)
	if over := len(t.view.Log) - maxLogLines; over > 0 {
		t.view.Log = append(t.view.Log[:0], t.view.Log[over:]...)
	}
	t.render()
}

func (t *TerminalIO) render() {
	t.view.Input = string(t.input)
	t.renderer.Render(t.view)
}
