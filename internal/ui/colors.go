package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the styles used by the terminal backend.
type Palette struct {
	Grid    tcell.Style
	Message tcell.Style
	Prompt  tcell.Style
	Error   tcell.Style
}

// NewPalette builds the palette with the house grid drawn in accent.
func NewPalette(accent string) (Palette, error) {
	color, err := ParseHexColor(accent)
	if err != nil {
		return Palette{}, err
	}
	base := tcell.StyleDefault
	return Palette{
		Grid:    base.Foreground(color),
		Message: base,
		Prompt:  base.Bold(true),
		Error:   base.Foreground(tcell.ColorRed),
	}, nil
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	var rgb [3]int32
	for i := range rgb {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid component %d in %q: %w", i, hex, err)
		}
		rgb[i] = int32(v)
	}
	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}
