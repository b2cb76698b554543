package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the hardcoded 2048 configuration.
// It mirrors defaults/t2048.yaml and is used if the embedded file cannot be parsed.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		Levels: []LevelConfig{
			{Name: "Warm-up", Target: 128, Spawn4: 0.10},
			{Name: "Getting Started", Target: 256, Spawn4: 0.10},
			{Name: "Building Momentum", Target: 512, Spawn4: 0.10},
			{Name: "The Climb", Target: 1024, Spawn4: 0.10},
			{Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
			{Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
			{Name: "Master Class", Target: 8192, Spawn4: 0.15},
			{Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
			{Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
			{Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				Spawn4Increase: 0.15,
			},
		},
	}
}

// DefaultT2048YAML returns the embedded default config file.
func DefaultT2048YAML() []byte {
	return defaultT2048YAML
}
