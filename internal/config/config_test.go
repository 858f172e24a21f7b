package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBasketConfigValid(t *testing.T) {
	if err := DefaultBasketConfig().Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Embedded YAML should parse: %v", err)
	}
	if cfg != DefaultBasketConfig() {
		t.Errorf("Embedded YAML = %+v, expected %+v", cfg, DefaultBasketConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BasketConfig)
	}{
		{"zero canvas width", func(c *BasketConfig) { c.Canvas.Width = 0 }},
		{"negative canvas height", func(c *BasketConfig) { c.Canvas.Height = -1 }},
		{"zero basket width", func(c *BasketConfig) { c.Basket.Width = 0 }},
		{"basket wider than canvas", func(c *BasketConfig) { c.Basket.Width = 401 }},
		{"zero step", func(c *BasketConfig) { c.Basket.Step = 0 }},
		{"negative radius", func(c *BasketConfig) { c.Items.Radius = -1 }},
		{"zero fall speed", func(c *BasketConfig) { c.Items.FallSpeed = 0 }},
		{"zero spawn odds", func(c *BasketConfig) { c.Items.SpawnOdds = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBasketConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("items:\n  fall_speed: 3\npalette:\n  background: black\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Items.FallSpeed != 3 {
		t.Errorf("FallSpeed = %g, expected 3", cfg.Items.FallSpeed)
	}
	if cfg.Palette.Background != "black" {
		t.Errorf("Background = %q, expected black", cfg.Palette.Background)
	}
	if cfg.Basket.Width != 80 || cfg.Items.SpawnOdds != 20 {
		t.Error("Unset keys should keep their defaults")
	}
}

func TestLoadBasketCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basket.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: 640\n  height: 480\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBasket(path)
	if err != nil {
		t.Fatalf("LoadBasket failed: %v", err)
	}
	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 480 {
		t.Errorf("Canvas = %+v, expected 640x480", cfg.Canvas)
	}
}

func TestLoadBasketCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBasket(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Missing file error = %v, expected os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("basket:\n  width: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBasket(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("Oversized basket error = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultBasketConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg != DefaultBasketConfig() {
		t.Errorf("Round trip changed the config: %+v", cfg)
	}
}
