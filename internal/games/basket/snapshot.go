package basket

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Frame   uint64
	Score   int
	Missed  int
	BasketX float64
	Items   []Item
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:   g.frame,
		Score:   g.score,
		Missed:  g.missed,
		BasketX: g.basketX,
		Items:   g.Items(),
	}
}

// Missed returns the number of items that fell past the bottom edge.
func (g *Game) Missed() int {
	return g.missed
}
