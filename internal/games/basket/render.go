package basket

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/basket-catch/internal/canvas"
)

const (
	// Highlight circle of an item, up and left of its center.
	highlightOffset = 2
	highlightRadius = 2
)

// Render draws the current state onto dst without advancing the game.
// dst is usually the game's own surface; hosts pass another one for
// screenshots.
func (g *Game) Render(dst canvas.Surface) error {
	if dst == nil {
		return ErrNoSurface
	}

	dst.SetFillStyle(g.background)
	dst.FillRect(0, 0, g.width, g.height)

	if err := g.drawBasket(dst); err != nil {
		return err
	}
	for _, it := range g.items {
		if err := g.drawItem(dst, it); err != nil {
			return err
		}
	}
	return g.drawScore(dst)
}

func (g *Game) drawBasket(dst canvas.Surface) error {
	b := g.cfg.Basket
	p := g.cfg.Palette
	top := g.height - b.Height

	grad := dst.CreateLinearGradient(g.basketX, top, g.basketX+b.Width, g.height)
	if err := addStops(grad, p.BasketEdge, p.BasketCenter, p.BasketEdge); err != nil {
		return fmt.Errorf("basket: basket gradient: %w", err)
	}
	dst.SetFillStyle(grad)
	dst.FillRect(g.basketX, top, b.Width, b.Height)
	return nil
}

func (g *Game) drawItem(dst canvas.Surface, it Item) error {
	r := g.cfg.Items.Radius
	p := g.cfg.Palette

	grad, err := dst.CreateRadialGradient(
		it.X-highlightOffset, it.Y-highlightOffset, highlightRadius,
		it.X, it.Y, r,
	)
	if err != nil {
		return fmt.Errorf("basket: item gradient: %w", err)
	}
	if err := addStops(grad, p.ItemHighlight, p.ItemShadow); err != nil {
		return fmt.Errorf("basket: item gradient: %w", err)
	}

	dst.SetFillStyle(grad)
	dst.BeginPath()
	if err := dst.Arc(it.X, it.Y, r, 0, 2*math.Pi); err != nil {
		return fmt.Errorf("basket: item: %w", err)
	}
	dst.Fill()
	return nil
}

func (g *Game) drawScore(dst canvas.Surface) error {
	hud := g.cfg.HUD
	dst.SetFillStyle(g.text)
	dst.SetFont(hud.Font)
	if err := dst.FillText("Score: "+strconv.Itoa(g.score), hud.X, hud.Y); err != nil {
		return fmt.Errorf("basket: score: %w", err)
	}
	return nil
}

// addStops spreads colors evenly over [0, 1].
func addStops(grad *canvas.Gradient, colors ...string) error {
	last := float64(len(colors) - 1)
	for i, c := range colors {
		if err := grad.AddColorStop(float64(i)/last, c); err != nil {
			return err
		}
	}
	return nil
}
