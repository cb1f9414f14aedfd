package preview

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"meadowgen/internal/generate"
)

// GenerationLog is one line of runs.jsonl. The grid itself is never stored.
type GenerationLog struct {
	Time        time.Time `json:"time"`
	Seed        int64     `json:"seed"`
	NoiseSeed   int64     `json:"noise_seed"`
	NoiseKind   string    `json:"noise_kind"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Iterations  int       `json:"iterations"`
	CapHit      bool      `json:"cap_hit"`
	FillRatio   float64   `json:"fill_ratio"`
	HolesFilled int       `json:"holes_filled"`
	Props3x3    int       `json:"props_3x3"`
	Props2x2    int       `json:"props_2x2"`
	Props1x1    int       `json:"props_1x1"`
	ElapsedMS   float64   `json:"elapsed_ms"`
}

func newGenerationLog(cfg *generate.Config, stats generate.Stats) GenerationLog {
	return GenerationLog{
		Time:        time.Now().UTC(),
		Seed:        stats.Seed,
		NoiseSeed:   stats.NoiseSeed,
		NoiseKind:   string(cfg.NoiseKind),
		Width:       stats.Width,
		Height:      stats.Height,
		Iterations:  stats.Carve.Iterations,
		CapHit:      stats.Carve.CapHit,
		FillRatio:   stats.Carve.FillRatio,
		HolesFilled: stats.HolesFilled,
		Props3x3:    stats.Props3x3,
		Props2x2:    stats.Props2x2,
		Props1x1:    stats.Props1x1,
		ElapsedMS:   float64(stats.Elapsed.Microseconds()) / 1000,
	}
}

// saveRunLog appends entry as a single JSON line to runs.jsonl.
func saveRunLog(entry GenerationLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored:
// $XDG_DATA_HOME/meadowgen, defaulting to ~/.local/share/meadowgen.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "meadowgen"), nil
}
