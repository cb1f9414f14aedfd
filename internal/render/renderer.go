package render

import (
	"meadowgen/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of screen rows reserved below the map.
const hudRows = 4

// Renderer draws a generated level onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  int
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-hudRows, 1)),
	}
}

// Resize refits the viewport after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 1)
}

// Theme returns the active theme.
func (r *Renderer) Theme() *Theme { return &Themes[r.theme] }

// SetTheme selects Themes[i]; out-of-range indexes select the default.
func (r *Renderer) SetTheme(i int) {
	if i < 0 || i >= len(Themes) {
		i = 0
	}
	r.theme = i
}

// NextTheme cycles to the following theme and returns its name.
func (r *Renderer) NextTheme() string {
	r.theme = (r.theme + 1) % len(Themes)
	return Themes[r.theme].Name
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// Pan shifts the camera by (dx, dy) cells, keeping it over the map.
func (r *Renderer) Pan(gmap *gamemap.GameMap, dx, dy int) {
	r.camera.Pan(dx, dy)
	r.camera.Clamp(gmap.Width, gmap.Height)
}

// Camera exposes the viewport, mainly for tests.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawLevel clears the screen and draws every visible cell of gmap.
// Row 0 of the grid is drawn at the bottom so the picture matches world
// space, where y grows upwards.
func (r *Renderer) DrawLevel(gmap *gamemap.GameMap) {
	r.screen.Clear()
	theme := r.Theme()
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)

	for y := range gmap.Height {
		for x := range gmap.Width {
			sx, sy, onScreen := r.camera.WorldToScreen(x, gmap.Height-1-y)
			if !onScreen {
				continue
			}
			s := gmap.At(x, y)
			g := theme.Glyph(s)
			style := bg.Foreground(g.FG)
			if theme.LayerBG {
				style = style.Background(layerBackground(s.Layers()))
			}
			r.putGlyph(sx, sy, g.Text, style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Narrow glyphs get a blank second column so cells stay square.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
