package basket

// Update advances the game one frame and redraws the surface.
// The returned error comes from the surface, never from game logic.
func (g *Game) Update() error {
	g.spawn()
	g.advance()
	g.sweep()
	g.frame++
	return g.Render(g.surface)
}

// spawn adds at most one item at the top with probability 1/SpawnOdds.
func (g *Game) spawn() {
	if g.rng.Intn(g.cfg.Items.SpawnOdds) != 0 {
		return
	}
	g.items = append(g.items, Item{X: g.rng.Float64() * g.width, Y: 0})
}

func (g *Game) advance() {
	for i := range g.items {
		g.items[i].Y += g.cfg.Items.FallSpeed
	}
}

// sweep removes caught and missed items. A catch wins over a miss when an
// item is in both zones at once.
func (g *Game) sweep() {
	kept := make([]Item, 0, len(g.items))
	for _, it := range g.items {
		switch {
		case g.caught(it):
			g.score++
		case it.Y >= g.height:
			g.missed++
		default:
			kept = append(kept, it)
		}
	}
	g.items = kept
}

func (g *Game) caught(it Item) bool {
	return it.Y >= g.height-g.cfg.Basket.Height &&
		it.X >= g.basketX &&
		it.X <= g.basketX+g.cfg.Basket.Width
}
