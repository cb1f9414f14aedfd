package render

import (
	"meadowgen/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Glyph is how one tile state is drawn.
type Glyph struct {
	Text string
	FG   tcell.Color
}

// Theme maps every tile state to a glyph. Emoji glyphs carry their own
// colours, so FG only matters for text themes.
type Theme struct {
	Name   string
	Glyphs [gamemap.Used2x2 + 1]Glyph
	// LayerBG paints each cell's background from its tilemap layers.
	LayerBG bool
}

// Glyph returns the glyph for s, falling back to the Err glyph.
func (t *Theme) Glyph(s gamemap.TileState) Glyph {
	if int(s) < len(t.Glyphs) {
		return t.Glyphs[s]
	}
	return t.Glyphs[gamemap.Err]
}

// Themes lists the built-in themes; index 0 is the default.
var Themes = []Theme{
	{
		// Meadow: emoji terrain, trees and rocks for props
		Name: "meadow",
		Glyphs: [...]Glyph{
			gamemap.Empty:      {" ", tcell.ColorBlack},
			gamemap.Floor:      {"🟫", tcell.ColorDefault},
			gamemap.Wall:       {"🧱", tcell.ColorDefault},
			gamemap.DarkGrass:  {"🟩", tcell.ColorDefault},
			gamemap.LightGrass: {"🌿", tcell.ColorDefault},
			gamemap.Err:        {"❌", tcell.ColorDefault},
			gamemap.Obj3x3:     {"🌳", tcell.ColorDefault},
			gamemap.Obj2x2:     {"🌲", tcell.ColorDefault},
			gamemap.Obj1x1:     {"🪨", tcell.ColorDefault},
			gamemap.Used3x3:    {"🍃", tcell.ColorDefault},
			gamemap.Used2x2:    {"🌱", tcell.ColorDefault},
		},
	},
	{
		// Plain: single-column text for terminals without emoji fonts
		Name:    "plain",
		LayerBG: true,
		Glyphs: [...]Glyph{
			gamemap.Empty:      {" ", tcell.ColorBlack},
			gamemap.Floor:      {".", tcell.ColorTan},
			gamemap.Wall:       {"#", tcell.ColorGray},
			gamemap.DarkGrass:  {",", tcell.ColorGreen},
			gamemap.LightGrass: {"\"", tcell.ColorLightGreen},
			gamemap.Err:        {"!", tcell.ColorRed},
			gamemap.Obj3x3:     {"T", tcell.ColorForestGreen},
			gamemap.Obj2x2:     {"P", tcell.ColorOliveDrab},
			gamemap.Obj1x1:     {"o", tcell.ColorSlateGray},
			gamemap.Used3x3:    {"t", tcell.ColorForestGreen},
			gamemap.Used2x2:    {"p", tcell.ColorOliveDrab},
		},
	},
}

// ThemeByName returns the index of the named theme, or 0.
func ThemeByName(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// layerBackground picks the background for a cell from its topmost ground
// layer. Top-layer cells (walls) stay black.
func layerBackground(l gamemap.Layer) tcell.Color {
	switch {
	case l.Has(gamemap.LayerTop):
		return tcell.ColorBlack
	case l.Has(gamemap.LayerLightGrass):
		return tcell.ColorDarkOliveGreen
	case l.Has(gamemap.LayerDarkGrass):
		return tcell.ColorDarkGreen
	case l.Has(gamemap.LayerBottom):
		return tcell.ColorSaddleBrown
	}
	return tcell.ColorBlack
}
