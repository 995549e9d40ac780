package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in config directories.
const FileName = "tether.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.tether/configs/tether.yaml -> ./configs/tether.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it sets. Only an explicit customPath can fail.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses YAML over the hard-coded defaults.
func decode(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserDir returns ~/.tether, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tether")
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 8
		cfg.Camera.StartLag = 240
	case DifficultyHard:
		cfg.Gameplay.Lives = 3
		cfg.Camera.StartLag = 160
	}
}

// Validate reports the first setting that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.World.TileSize <= 0:
		return fmt.Errorf("config: world.tile_size must be positive")
	case c.World.ScreenW <= 0 || c.World.ScreenH <= 0:
		return fmt.Errorf("config: world screen size must be positive")
	case c.Physics.MoveSpeed < 0:
		return fmt.Errorf("config: physics.move_speed must not be negative")
	case c.Physics.ProbeDepth <= 0 || c.Physics.ProbeDepth*2 >= c.World.TileSize:
		return fmt.Errorf("config: physics.probe_depth must be in (0, tile_size/2)")
	case c.Timing.TimeScale <= 0:
		return fmt.Errorf("config: timing.time_scale must be positive")
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("config: gameplay.lives must be positive")
	}
	return nil
}
