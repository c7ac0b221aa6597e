// Package house composes the text picture of the house: a fixed character
// grid with field placeholders and room panels laid over it.
package house

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/littleprofessor/internal/level"
)

var (
	// ErrMalformedLayout is returned when a layout is empty or not rectangular.
	ErrMalformedLayout = errors.New("house: malformed layout")
	// ErrOutOfBounds is returned when a panel does not fit the grid.
	ErrOutOfBounds = errors.New("house: panel out of bounds")
)

// Layout names one of the house pictures.
type Layout int

const (
	Entrance Layout = iota
	Hallway
)

// String returns the layout's resource name.
func (l Layout) String() string {
	switch l {
	case Entrance:
		return "entrance"
	case Hallway:
		return "hallway"
	default:
		return "unknown"
	}
}

// Field is a placeholder token in a layout.
type Field string

const (
	FieldUsername   Field = "%USER________%"
	FieldHighscore  Field = "%HIGHSCORE%"
	FieldScore      Field = "%S%"
	FieldTotalScore Field = "%T%"
	FieldTime       Field = "%TIME%"
	FieldLevel      Field = "%LEVEL%"
)

// LayoutSource loads the rows of a named layout.
type LayoutSource interface {
	Layout(name string) ([]string, error)
}

// TimeSource reports the remaining time shown in the footer.
type TimeSource interface {
	Remaining() int
}

// Grid is a snapshot of the composed house.
type Grid []string

// String joins the rows with newlines.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// House holds the mutable grid of the active layout.
type House struct {
	source LayoutSource
	clock  TimeSource
	layout Layout
	rows   []string
}

// New loads the Entrance layout.
func New(source LayoutSource, clock TimeSource) (*House, error) {
	h := &House{source: source, clock: clock}
	if err := h.ChangeLayout(Entrance); err != nil {
		return nil, err
	}
	return h, nil
}

// Layout returns the active layout.
func (h *House) Layout() Layout {
	return h.layout
}

// ChangeLayout reloads the grid from the named layout, discarding every
// substitution and overlay made so far.
func (h *House) ChangeLayout(l Layout) error {
	rows, err := h.source.Layout(l.String())
	if err != nil {
		return fmt.Errorf("load %s layout: %w", l, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrMalformedLayout, l)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: %s row %d has width %d, want %d", ErrMalformedLayout, l, i, len(row), width)
		}
	}
	h.layout = l
	h.rows = append(h.rows[:0], rows...)
	return nil
}

// SetField replaces every occurrence of the token with value, padded with
// spaces to the token's width. Longer values are written in full.
func (h *House) SetField(f Field, value string) {
	token := string(f)
	if pad := len(token) - len(value); pad > 0 {
		value += strings.Repeat(" ", pad)
	}
	for i, row := range h.rows {
		h.rows[i] = strings.ReplaceAll(row, token, value)
	}
}

// SetUsername fills the username field.
func (h *House) SetUsername(name string) { h.SetField(FieldUsername, name) }

// SetHighscore fills the highscore field.
func (h *House) SetHighscore(v int) { h.SetField(FieldHighscore, strconv.Itoa(v)) }

// SetScore fills the current score field.
func (h *House) SetScore(v int) { h.SetField(FieldScore, strconv.Itoa(v)) }

// SetTotalScore fills the score target field.
func (h *House) SetTotalScore(v int) { h.SetField(FieldTotalScore, strconv.Itoa(v)) }

// SetTime fills the remaining time field.
func (h *House) SetTime(v int) { h.SetField(FieldTime, strconv.Itoa(v)) }

// SetLevel fills the level name field.
func (h *House) SetLevel(lvl *level.Level) { h.SetField(FieldLevel, lvl.Name()) }

// Render returns a snapshot of the grid. In the Hallway the current time is
// filled in and every room of lvl is drawn.
func (h *House) Render(lvl *level.Level, progress *level.Progress) (Grid, error) {
	if h.layout == Hallway {
		if h.clock != nil {
			h.SetTime(h.clock.Remaining())
		}
		for _, room := range lvl.Rooms() {
			if err := h.overlay(room, progress.Completed(room.ID)); err != nil {
				return nil, err
			}
		}
	}
	snapshot := make(Grid, len(h.rows))
	copy(snapshot, h.rows)
	return snapshot, nil
}
