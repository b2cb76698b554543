// Package t2048 implements the classic 2048 puzzle: a pure board and move
// engine, a Session that owns the mutable game state, and a ticking Game
// with campaign and endless modes for the terminal platform.
package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
)

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int     // Target tile value to reach
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, _ := config.ParseDifficultyPreset(preset)
	difficultyPreset = p
}

// ActiveConfig returns the config selected on the command line with the
// difficulty preset applied, falling back to defaults on error.
// The CLI validates the custom path before the game starts.
func ActiveConfig() config.T2048Config {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	if difficultyPreset != "" {
		config.ApplyT2048Preset(&cfg, difficultyPreset)
	}
	return cfg
}

// levelsFromConfig numbers the configured levels from 1.
func levelsFromConfig(cfg config.T2048Config) []Level {
	levels := make([]Level, len(cfg.Levels))
	for i, lvl := range cfg.Levels {
		levels[i] = Level{
			ID:     i + 1,
			Name:   lvl.Name,
			Target: lvl.Target,
			Spawn4: lvl.Spawn4,
		}
	}
	return levels
}

// Levels returns the campaign levels from the active config.
func Levels() []Level {
	return levelsFromConfig(ActiveConfig())
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels())
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	levels := Levels()
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}
