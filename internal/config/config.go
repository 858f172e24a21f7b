// Package config provides YAML-based configuration loading for the basket game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration that cannot drive a game.
var ErrInvalid = errors.New("config: invalid configuration")

// BasketConfig contains all configuration for the basket game.
type BasketConfig struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Basket  BasketParams  `yaml:"basket"`
	Items   ItemParams    `yaml:"items"`
	Palette PaletteConfig `yaml:"palette"`
	HUD     HUDConfig     `yaml:"hud"`
}

// CanvasConfig defines the logical drawing surface size.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BasketParams defines the basket geometry and movement.
type BasketParams struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"` // catch zone depth above the bottom edge
	Step   float64 `yaml:"step"`
}

// ItemParams defines falling item behavior.
type ItemParams struct {
	Radius    float64 `yaml:"radius"`
	FallSpeed float64 `yaml:"fall_speed"`
	SpawnOdds int     `yaml:"spawn_odds"` // one spawn per SpawnOdds frames on average
}

// PaletteConfig holds the colors used when drawing a frame.
type PaletteConfig struct {
	Background    string `yaml:"background"`
	BasketEdge    string `yaml:"basket_edge"`
	BasketCenter  string `yaml:"basket_center"`
	ItemHighlight string `yaml:"item_highlight"`
	ItemShadow    string `yaml:"item_shadow"`
	Text          string `yaml:"text"`
}

// HUDConfig places the score line.
type HUDConfig struct {
	Font string  `yaml:"font"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Validate reports the first setting that cannot drive a game.
// Colors and fonts are checked by the canvas when the game is built.
func (c BasketConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Basket.Width <= 0 || c.Basket.Height <= 0:
		return fmt.Errorf("%w: basket size %gx%g", ErrInvalid, c.Basket.Width, c.Basket.Height)
	case c.Basket.Width > float64(c.Canvas.Width):
		return fmt.Errorf("%w: basket width %g exceeds canvas width %d", ErrInvalid, c.Basket.Width, c.Canvas.Width)
	case c.Basket.Step <= 0:
		return fmt.Errorf("%w: basket step %g", ErrInvalid, c.Basket.Step)
	case c.Items.Radius < 0:
		return fmt.Errorf("%w: item radius %g", ErrInvalid, c.Items.Radius)
	case c.Items.FallSpeed <= 0:
		return fmt.Errorf("%w: fall speed %g", ErrInvalid, c.Items.FallSpeed)
	case c.Items.SpawnOdds <= 0:
		return fmt.Errorf("%w: spawn odds %d", ErrInvalid, c.Items.SpawnOdds)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c BasketConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
