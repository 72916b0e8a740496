package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load decodes the configuration of gameID over def.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Only a custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or invalid.
func load[T any](gameID, customPath string, def T) (T, error) {
	if customPath != "" {
		cfg := def
		data, err := os.ReadFile(customPath)
		if err != nil {
			return def, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return def, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := decodeFile(userCfgPath, def); ok {
			return cfg, nil
		}
	}

	if cfg, ok := decodeFile(filepath.Join("configs", filename), def); ok {
		return cfg, nil
	}

	cfg := def
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return def, nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

func decodeFile[T any](path string, def T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return def, false
	}
	cfg := def
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return def, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig())
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, DefaultTetrisConfig())
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, DefaultPongConfig())
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, DefaultBreakoutConfig())
}

// LoadInvaders loads Space Invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load("invaders", customPath, DefaultInvadersConfig())
}

// LoadMemory loads Memory Match configuration.
func LoadMemory(customPath string) (MemoryConfig, error) {
	return load("memory", customPath, DefaultMemoryConfig())
}

// LoadBalloon loads Balloon Pop configuration.
func LoadBalloon(customPath string) (BalloonConfig, error) {
	return load("balloon", customPath, DefaultBalloonConfig())
}

// LoadPuzzle loads drag-drop puzzle configuration.
func LoadPuzzle(customPath string) (PuzzleConfig, error) {
	return load("puzzle", customPath, DefaultPuzzleConfig())
}

// LoadSimon loads Simon Says configuration.
func LoadSimon(customPath string) (SimonConfig, error) {
	return load("simon", customPath, DefaultSimonConfig())
}

// LoadWhack loads Whack-a-Mole configuration.
func LoadWhack(customPath string) (WhackConfig, error) {
	return load("whackamole", customPath, DefaultWhackConfig())
}
