package config

import (
	_ "embed"
)

//go:embed defaults/basket.yaml
var defaultBasketYAML []byte

// DefaultBasketConfig returns the default basket game configuration.
func DefaultBasketConfig() BasketConfig {
	return BasketConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 300,
		},
		Basket: BasketParams{
			Width:  80,
			Height: 20,
			Step:   20,
		},
		Items: ItemParams{
			Radius:    10,
			FallSpeed: 2,
			SpawnOdds: 20,
		},
		Palette: PaletteConfig{
			Background:    "#333333",
			BasketEdge:    "#005A9C",
			BasketCenter:  "#00A2FF",
			ItemHighlight: "#FF6347",
			ItemShadow:    "#8B0000",
			Text:          "#FFFFFF",
		},
		HUD: HUDConfig{
			Font: "20px sans-serif",
			X:    10,
			Y:    30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBasketYAML
}
