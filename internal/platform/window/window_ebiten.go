//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/basket-catch/internal/canvas"
	"github.com/vovakirdan/basket-catch/internal/games/basket"
)

// host adapts a basket game to ebiten.Game.
type host struct {
	game    *basket.Game
	surface *canvas.ImageSurface
	logger  *log.Logger
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
)

// Run opens a window and blocks until it is closed.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, h := opts.Basket.Canvas.Width, opts.Basket.Canvas.Height
	surface, err := canvas.NewImageSurface(w, h)
	if err != nil {
		return err
	}
	game, err := basket.New(surface, opts.Basket, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = "Basket Catch"
	}
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(title)

	logger.Info("window opened", "width", w, "height", h, "scale", scale, "seed", seed)
	err = ebiten.RunGame(&host{game: game, surface: surface, logger: logger})
	logger.Info("window closed", "score", game.Score(), "frames", game.Frame())
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (h *host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if held(leftKeys) {
		h.game.MoveBasket(basket.Left)
	}
	if held(rightKeys) {
		h.game.MoveBasket(basket.Right)
	}
	return h.game.Update()
}

// Draw implements ebiten.Game.
func (h *host) Draw(screen *ebiten.Image) {
	screen.WritePixels(h.surface.Image().Pix)
}

// Layout implements ebiten.Game.
func (h *host) Layout(_, _ int) (int, int) {
	return int(h.game.Width()), int(h.game.Height())
}

func held(keys []ebiten.Key) bool {
	for _, k := range keys {
		if repeating(inpututil.KeyPressDuration(k)) {
			return true
		}
	}
	return false
}
