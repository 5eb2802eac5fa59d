package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"war/game"
)

// Scenario is a prepared game: the board, the player's color and optionally
// the seed and the mission, so a session can start without the setup prompts.
type Scenario struct {
	PlayerColor string         `yaml:"player_color"`
	Seed        uint64         `yaml:"seed"`
	Mission     string         `yaml:"mission"`
	Territories []TerritoryDef `yaml:"territories"`
}

type TerritoryDef struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Troops int    `yaml:"troops"`
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	var sc Scenario
	if err := loadYAML(path, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Parse decodes and validates a scenario held in memory.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	if len(sc.Territories) == 0 {
		return fmt.Errorf("scenario needs at least one territory")
	}
	if _, err := game.NewTerritory("player", sc.PlayerColor, 0); err != nil {
		return fmt.Errorf("player_color: %w", err)
	}
	if _, err := sc.Board(); err != nil {
		return err
	}
	if sc.Mission != "" && game.MissionIndex(sc.Mission) < 0 {
		log.Warn().Msgf("mission %q is not in the catalog, it will be matched by key phrase", sc.Mission)
	}
	return nil
}

// Board builds a fresh board from the scenario territories.
func (sc *Scenario) Board() (*game.Board, error) {
	territories := make([]game.Territory, 0, len(sc.Territories))
	for i, def := range sc.Territories {
		t, err := game.NewTerritory(def.Name, def.Color, def.Troops)
		if err != nil {
			return nil, fmt.Errorf("territory %d: %w", i, err)
		}
		territories = append(territories, t)
	}
	return game.NewBoard(territories)
}
