package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/basket-catch/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The playfield is scaled to the
terminal size; each cell shows two pixels stacked vertically.

Controls:
  Left/H/A   - Move basket left
  Right/L/D  - Move basket right
  Ctrl+S     - Save a PNG screenshot to ~/.basket/screenshots
  Q/Esc      - Quit

Examples:
  basket play
  basket play --seed 42
  basket play --config ./my-basket.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	bcfg := loadConfig()

	// Get terminal size early; Bubble Tea sends the real size on start
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := playLogger()
	defer closeLog()

	if err := tui.Run(runtimeConfig(width, height), bcfg, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playLogger keeps log output off the alt screen. At debug level it appends
// to ~/.basket/basket.log; otherwise logs are dropped.
func playLogger() (*log.Logger, func()) {
	logger := newLogger("basket")
	if log.GetLevel() > log.DebugLevel {
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}
	dir := filepath.Join(home, ".basket")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "basket.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}
	logger.SetOutput(f)
	return logger, func() { _ = f.Close() }
}
