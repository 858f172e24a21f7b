package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/basket-catch/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the canvas and play with the
keyboard. Requires a build with -tags ebiten.

Controls:
  Left/A/H   - Move basket left (hold to repeat)
  Right/D/L  - Move basket right (hold to repeat)
  Esc/Q      - Quit

Examples:
  go build -tags ebiten ./cmd/basket
  basket window --scale 2`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 2, "Window pixels per canvas unit")
}

func runWindow(_ *cobra.Command, _ []string) {
	opts := window.Options{
		Runtime: runtimeConfig(0, 0),
		Basket:  loadConfig(),
		Scale:   flagScale,
		Logger:  newLogger("basket-window"),
	}
	if err := window.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
