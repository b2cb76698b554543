package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid 2048 config")

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.arcade/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error.
// Broken files in the implicit locations are skipped.
func LoadT2048(customPath string) (T2048Config, error) {
	var cfg T2048Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := parseT2048(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("t2048.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := parseT2048(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/t2048.yaml"); err == nil {
		if err := parseT2048(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := parseT2048(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseT2048 decodes YAML over the hardcoded defaults and validates the result,
// so a partial file only overrides the keys it sets.
func parseT2048(data []byte, out *T2048Config) error {
	cfg := DefaultT2048Config()
	if len(data) > 0 {
		// Levels are replaced, not merged element by element
		cfg.Levels = nil
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		if len(cfg.Levels) == 0 {
			cfg.Levels = DefaultT2048Config().Levels
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	*out = cfg
	return nil
}

// Validate checks probabilities and level targets.
func (c T2048Config) Validate() error {
	if !validProb(c.Spawn.FourProbability) {
		return fmt.Errorf("%w: spawn.four_probability %v out of [0, 1]", ErrInvalidConfig, c.Spawn.FourProbability)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidConfig)
	}
	for i, lvl := range c.Levels {
		if lvl.Target < 4 || lvl.Target&(lvl.Target-1) != 0 {
			return fmt.Errorf("%w: level %d target %d is not a power of two >= 4", ErrInvalidConfig, i+1, lvl.Target)
		}
		if !validProb(lvl.Spawn4) {
			return fmt.Errorf("%w: level %d spawn4 %v out of [0, 1]", ErrInvalidConfig, i+1, lvl.Spawn4)
		}
	}
	if s := c.Difficulty.Scaling.Spawn4Increase; s < 0 || s > 1 {
		return fmt.Errorf("%w: difficulty.scaling.spawn4_increase %v out of [0, 1]", ErrInvalidConfig, s)
	}
	return nil
}

func validProb(p float64) bool {
	return p >= 0 && p <= 1
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust spawning based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.FourProbability = 0.05
	case DifficultyHard:
		cfg.Spawn.FourProbability = 0.20
	}
}

// MarshalT2048 encodes a config in the same YAML layout LoadT2048 reads.
func MarshalT2048(cfg T2048Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode 2048 config: %w", err)
	}
	return data, nil
}
