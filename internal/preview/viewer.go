// Package preview is the interactive terminal viewer for generated levels.
package preview

import (
	"fmt"
	"log/slog"
	"math/rand"

	"meadowgen/internal/gamemap"
	"meadowgen/internal/generate"
	"meadowgen/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Viewer shows one generated level at a time and regenerates on demand.
// A Viewer owns its screen, grid and random sources; only the SeedSource
// may be shared.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      generate.Config
	seeds    *SeedSource
	logger   *slog.Logger

	// Title is shown at the start of the HUD status line.
	Title string
	// LogRuns appends every generation to runs.jsonl.
	LogRuns bool

	gmap     *gamemap.GameMap
	stats    generate.Stats
	props    []generate.Prop
	messages []string
}

// New creates a viewer on an initialized screen. The first level uses cfg
// as given; every regeneration takes its seeds from seeds.
func New(screen tcell.Screen, cfg generate.Config, seeds *SeedSource, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg.Logger = logger
	return &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cfg:      cfg,
		seeds:    seeds,
		logger:   logger,
	}
}

// Level returns the level currently shown, or nil before the first one.
func (v *Viewer) Level() *gamemap.GameMap { return v.gmap }

// Stats returns the statistics of the current level.
func (v *Viewer) Stats() generate.Stats { return v.stats }

// Props returns the prop placements of the current level.
func (v *Viewer) Props() []generate.Prop { return v.props }

// SetTheme selects a render theme by name.
func (v *Viewer) SetTheme(name string) { v.renderer.SetTheme(render.ThemeByName(name)) }

// Run generates the first level and processes key events until the user
// quits or the screen stops delivering events. The caller owns the screen
// and must Fini it.
func (v *Viewer) Run() error {
	if v.gmap == nil {
		if err := v.load(v.cfg); err != nil {
			return err
		}
	}
	v.addMessage("arrows/hjkl pan, c centre, r regenerate, t theme, q quit")

	for {
		v.draw()

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer.Resize()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				return nil
			}
			v.processAction(action)
		}
	}
}

func (v *Viewer) processAction(action Action) {
	switch action {
	case ActionRegenerate:
		if err := v.Regenerate(); err != nil {
			v.logger.Error("regenerate level", "err", err)
			v.addMessage("generation failed: " + err.Error())
		}
	case ActionTheme:
		v.addMessage("theme: " + v.renderer.NextTheme())
	case ActionCenter:
		v.center()
	default:
		dx, dy := actionToDelta(action)
		if dx != 0 || dy != 0 {
			v.renderer.Pan(v.gmap, dx, dy)
		}
	}
}

// Regenerate builds a fresh level from the next seed.
func (v *Viewer) Regenerate() error {
	cfg := v.cfg
	cfg.Seed = v.seeds.Next()
	cfg.NoiseSeed = cfg.Seed
	return v.load(cfg)
}

func (v *Viewer) load(cfg generate.Config) error {
	gmap, stats, err := generate.Generate(&cfg)
	if err != nil {
		return fmt.Errorf("generate seed %d: %w", cfg.Seed, err)
	}
	v.gmap, v.stats = gmap, stats
	v.props = generate.Props(gmap, &cfg, rand.New(rand.NewSource(cfg.Seed)))
	v.center()

	msg := fmt.Sprintf("seed %d: %d props, %.0f%% carved", stats.Seed, len(v.props), stats.Carve.FillRatio*100)
	if stats.Carve.CapHit {
		msg += " (iteration cap hit)"
	}
	v.addMessage(msg)

	if v.LogRuns {
		if err := saveRunLog(newGenerationLog(&cfg, stats)); err != nil {
			v.logger.Warn("save run log", "err", err)
		}
	}
	return nil
}

func (v *Viewer) center() {
	v.renderer.CenterOn(v.gmap.Width/2, v.gmap.Height/2)
	v.renderer.Pan(v.gmap, 0, 0)
}

func (v *Viewer) draw() {
	v.renderer.DrawLevel(v.gmap)
	v.renderer.DrawHUD(v.stats, v.Title, v.messages)
}

func (v *Viewer) addMessage(msg string) {
	v.messages = append(v.messages, msg)
	if len(v.messages) > 50 {
		v.messages = v.messages[len(v.messages)-50:]
	}
}
