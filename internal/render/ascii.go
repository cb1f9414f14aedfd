package render

import (
	"strings"

	"meadowgen/internal/gamemap"

	"github.com/mattn/go-runewidth"
)

// ASCII renders gmap with the plain theme, one character per cell, top row
// first. Row 0 of the grid is the last line.
func ASCII(gmap *gamemap.GameMap) string {
	plain := &Themes[ThemeByName("plain")]
	var b strings.Builder
	b.Grow((gmap.Width + 1) * gmap.Height)
	for y := gmap.Height - 1; y >= 0; y-- {
		for x := range gmap.Width {
			b.WriteString(plain.Glyph(gmap.At(x, y)).Text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump renders gmap with any theme, padding every cell to two columns so
// emoji and text themes line up the same way they do on screen.
func Dump(gmap *gamemap.GameMap, theme *Theme) string {
	var b strings.Builder
	for y := gmap.Height - 1; y >= 0; y-- {
		for x := range gmap.Width {
			b.WriteString(runewidth.FillRight(theme.Glyph(gmap.At(x, y)).Text, 2))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
