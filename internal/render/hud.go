package render

import (
	"fmt"
	"time"

	"meadowgen/internal/generate"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status bar and the latest messages below the map.
// title is shown at the start of the status line (a user name over SSH).
func (r *Renderer) DrawHUD(stats generate.Stats, title string, messages []string) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("seed %d/%d  %dx%d  fill %.0f%%  props %d/%d/%d  %s  [%s]",
		stats.Seed, stats.NoiseSeed,
		stats.Width, stats.Height,
		stats.Carve.FillRatio*100,
		stats.Props3x3, stats.Props2x2, stats.Props1x1,
		stats.Elapsed.Round(time.Millisecond),
		r.Theme().Name)
	if title != "" {
		status = fmt.Sprintf("[%s]  %s", title, status)
	}
	r.drawText(0, hudY+1, runewidth.Truncate(status, screenW, "…"), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 2 messages).
	start := max(len(messages)-2, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, runewidth.Truncate(msg, screenW, "…"), tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := range w {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
