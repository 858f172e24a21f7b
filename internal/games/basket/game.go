// Package basket implements the basket catch game: a basket slides along the
// bottom of a canvas and catches items falling from the top.
//
// The host owns the frame clock and the input devices. It calls Update once
// per animation frame and MoveBasket whenever a direction arrives, from a
// single goroutine.
package basket

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/basket-catch/internal/canvas"
	"github.com/vovakirdan/basket-catch/internal/config"
)

var (
	// ErrNoSurface is returned when a game or frame has no surface to draw on.
	ErrNoSurface = errors.New("basket: no drawing surface")
	// ErrBadSurface is returned when the surface reports a non-positive size.
	ErrBadSurface = errors.New("basket: surface has no area")
	// ErrBadConfig is returned when the configuration cannot drive a game.
	ErrBadConfig = errors.New("basket: invalid configuration")
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Direction is a basket movement request.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

// Item is a falling item. X is fixed at spawn; Y grows every frame.
type Item struct {
	X, Y float64
}

// Game holds the state of one basket game.
type Game struct {
	surface canvas.Surface
	rng     Rand
	cfg     config.BasketConfig

	width  float64
	height float64

	basketX float64
	items   []Item
	score   int
	frame   uint64
	missed  int

	background canvas.Solid
	text       canvas.Solid
}

// New creates a game drawing on surface. The basket starts centered.
// A nil rng seeds a source from the clock.
func New(surface canvas.Surface, cfg config.BasketConfig, rng Rand) (*Game, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	w, h := surface.Width(), surface.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrBadSurface, w, h)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if cfg.Basket.Width > w {
		return nil, fmt.Errorf("%w: basket width %g exceeds surface width %g", ErrBadConfig, cfg.Basket.Width, w)
	}
	if _, err := canvas.ParseFont(cfg.HUD.Font); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	g := &Game{
		surface: surface,
		rng:     rng,
		cfg:     cfg,
		width:   w,
		height:  h,
		basketX: w/2 - cfg.Basket.Width/2,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if err := g.parsePalette(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return g, nil
}

func (g *Game) parsePalette() error {
	p := g.cfg.Palette
	var err error
	if g.background, err = canvas.ParseColor(p.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if g.text, err = canvas.ParseColor(p.Text); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	// Gradient colors are attached per frame; check them once here.
	for name, c := range map[string]string{
		"basket_edge":    p.BasketEdge,
		"basket_center":  p.BasketCenter,
		"item_highlight": p.ItemHighlight,
		"item_shadow":    p.ItemShadow,
	} {
		if _, err := canvas.ParseColor(c); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// MoveBasket shifts the basket one step. A step that would push the basket
// past a wall is dropped. Unknown directions are ignored.
func (g *Game) MoveBasket(dir Direction) {
	step := g.cfg.Basket.Step
	switch dir {
	case Left:
		if g.basketX-step >= 0 {
			g.basketX -= step
		}
	case Right:
		if g.basketX+g.cfg.Basket.Width+step <= g.width {
			g.basketX += step
		}
	}
}

// Score returns the number of caught items.
func (g *Game) Score() int {
	return g.score
}

// BasketX returns the left edge of the basket.
func (g *Game) BasketX() float64 {
	return g.basketX
}

// BasketWidth returns the basket width.
func (g *Game) BasketWidth() float64 {
	return g.cfg.Basket.Width
}

// Items returns a copy of the falling items.
func (g *Game) Items() []Item {
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// Width returns the surface width captured at construction.
func (g *Game) Width() float64 {
	return g.width
}

// Height returns the surface height captured at construction.
func (g *Game) Height() float64 {
	return g.height
}

// Frame returns the number of completed updates.
func (g *Game) Frame() uint64 {
	return g.frame
}
