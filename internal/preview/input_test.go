package preview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Action
	}{
		{"arrow up", tcell.KeyUp, 0, ActionPanN},
		{"arrow down", tcell.KeyDown, 0, ActionPanS},
		{"arrow right", tcell.KeyRight, 0, ActionPanE},
		{"arrow left", tcell.KeyLeft, 0, ActionPanW},
		{"escape", tcell.KeyEscape, 0, ActionQuit},
		{"k", tcell.KeyRune, 'k', ActionPanN},
		{"J", tcell.KeyRune, 'J', ActionPanS},
		{"l", tcell.KeyRune, 'l', ActionPanE},
		{"h", tcell.KeyRune, 'h', ActionPanW},
		{"c", tcell.KeyRune, 'c', ActionCenter},
		{"r", tcell.KeyRune, 'r', ActionRegenerate},
		{"t", tcell.KeyRune, 't', ActionTheme},
		{"q", tcell.KeyRune, 'q', ActionQuit},
		{"unbound", tcell.KeyRune, 'x', ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			if got := keyToAction(ev); got != tt.want {
				t.Errorf("keyToAction = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestActionToDelta(t *testing.T) {
	tests := []struct {
		a      Action
		dx, dy int
	}{
		{ActionPanN, 0, -panStep},
		{ActionPanS, 0, panStep},
		{ActionPanE, panStep, 0},
		{ActionPanW, -panStep, 0},
		{ActionRegenerate, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := actionToDelta(tt.a)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("actionToDelta(%d) = (%d,%d); want (%d,%d)", tt.a, dx, dy, tt.dx, tt.dy)
		}
	}
}
