package env

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"clicker_backend/internal/config"
	"clicker_backend/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	gameConfigEnvName = "GAME_CONFIG"

	defaultGameConfigPath = "config.yaml"
)

type gameConfig struct {
	game model.GameConfig
}

// NewGameConfig читает YAML поверх значений по умолчанию.
// Нет файла - работают значения по умолчанию
func NewGameConfig() (config.GameConfig, error) {
	path := os.Getenv(gameConfigEnvName)
	if len(path) == 0 {
		path = defaultGameConfigPath
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("game config %s not found, using defaults", path)
		raw = nil
	} else if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	return NewGameConfigFromYAML(raw)
}

func NewGameConfigFromYAML(raw []byte) (config.GameConfig, error) {
	game := model.DefaultGameConfig()

	if len(bytes.TrimSpace(raw)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&game); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse game config: %w", err)
		}
	}

	if err := game.Validate(); err != nil {
		return nil, err
	}

	return &gameConfig{game: game}, nil
}

func (cfg *gameConfig) Game() model.GameConfig {
	return cfg.game
}
