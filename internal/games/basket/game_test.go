package basket

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/basket-catch/internal/canvas"
	"github.com/vovakirdan/basket-catch/internal/config"
)

// stubRand never spawns unless spawn is set; spawned items land at x*width.
type stubRand struct {
	spawn bool
	x     float64
}

func (r stubRand) Intn(int) int {
	if r.spawn {
		return 0
	}
	return 1
}

func (r stubRand) Float64() float64 { return r.x }

func newTestGame(t *testing.T, rng Rand) (*Game, *canvas.Recorder) {
	t.Helper()
	rec := canvas.NewRecorder(400, 300)
	g, err := New(rec, config.DefaultBasketConfig(), rng)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g, rec
}

func TestNewCentersBasket(t *testing.T) {
	g, _ := newTestGame(t, stubRand{})

	if g.BasketX() != 160 {
		t.Errorf("BasketX = %g, expected 160", g.BasketX())
	}
	if g.Width() != 400 || g.Height() != 300 {
		t.Errorf("size = %gx%g, expected 400x300", g.Width(), g.Height())
	}
	if g.Score() != 0 || len(g.Items()) != 0 {
		t.Error("New game should start empty with zero score")
	}
}

func TestNewErrors(t *testing.T) {
	badPalette := config.DefaultBasketConfig()
	badPalette.Palette.ItemShadow = "not-a-color"

	badFont := config.DefaultBasketConfig()
	badFont.HUD.Font = "sans-serif"

	badConfig := config.DefaultBasketConfig()
	badConfig.Items.SpawnOdds = 0

	tests := []struct {
		name    string
		surface canvas.Surface
		cfg     config.BasketConfig
		want    error
	}{
		{"nil surface", nil, config.DefaultBasketConfig(), ErrNoSurface},
		{"zero width", canvas.NewRecorder(0, 300), config.DefaultBasketConfig(), ErrBadSurface},
		{"negative height", canvas.NewRecorder(400, -1), config.DefaultBasketConfig(), ErrBadSurface},
		{"invalid config", canvas.NewRecorder(400, 300), badConfig, config.ErrInvalid},
		{"basket wider than surface", canvas.NewRecorder(50, 300), config.DefaultBasketConfig(), ErrBadConfig},
		{"bad palette color", canvas.NewRecorder(400, 300), badPalette, canvas.ErrInvalidColor},
		{"bad hud font", canvas.NewRecorder(400, 300), badFont, canvas.ErrInvalidFont},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.surface, tc.cfg, stubRand{})
			if !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, expected %v", err, tc.want)
			}
			if g != nil {
				t.Error("New() should not return a game on error")
			}
		})
	}
}

func TestNewNilRand(t *testing.T) {
	g, err := New(canvas.NewRecorder(400, 300), config.DefaultBasketConfig(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.rng == nil {
		t.Fatal("nil rng should be replaced with a seeded source")
	}
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestMoveBasketClamps(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		moves int
		want  float64
	}{
		{"one left", Left, 1, 140},
		{"one right", Right, 1, 180},
		{"left to the wall", Left, 8, 0},
		{"left past the wall", Left, 12, 0},
		{"right to the wall", Right, 8, 320},
		{"right past the wall", Right, 12, 320},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, stubRand{})
			for i := 0; i < tc.moves; i++ {
				g.MoveBasket(tc.dir)
				if g.basketX < 0 || g.basketX+g.BasketWidth() > g.width {
					t.Fatalf("basket out of bounds after move %d: x=%g", i+1, g.basketX)
				}
			}
			if g.BasketX() != tc.want {
				t.Errorf("BasketX = %g, expected %g", g.BasketX(), tc.want)
			}
		})
	}
}

func TestMoveBasketDropsPartialStep(t *testing.T) {
	g, _ := newTestGame(t, stubRand{})
	g.basketX = 10

	g.MoveBasket(Left)
	if g.BasketX() != 10 {
		t.Errorf("BasketX = %g, expected 10 (step would cross the wall)", g.BasketX())
	}

	g.basketX = 310
	g.MoveBasket(Right)
	if g.BasketX() != 310 {
		t.Errorf("BasketX = %g, expected 310 (step would cross the wall)", g.BasketX())
	}
}

func TestMoveBasketUnknownDirection(t *testing.T) {
	g, rec := newTestGame(t, stubRand{})

	for _, dir := range []Direction{"", "up", "LEFT", "down"} {
		g.MoveBasket(dir)
	}
	if g.BasketX() != 160 {
		t.Errorf("BasketX = %g, unknown directions should not move", g.BasketX())
	}
	if len(rec.Ops()) != 0 {
		t.Errorf("MoveBasket should not draw, recorded %d ops", len(rec.Ops()))
	}
}

func TestUpdateScenarios(t *testing.T) {
	tests := []struct {
		name       string
		item       Item
		wantScore  int
		wantMissed int
		wantItems  []Item
	}{
		{"caught above the basket", Item{X: 180, Y: 278}, 1, 0, []Item{}},
		{"kept outside the basket", Item{X: 50, Y: 278}, 0, 0, []Item{{X: 50, Y: 280}}},
		{"missed at the bottom", Item{X: 50, Y: 298}, 0, 1, []Item{}},
		{"catch wins at the bottom", Item{X: 180, Y: 298}, 1, 0, []Item{}},
		{"left edge is inclusive", Item{X: 160, Y: 290}, 1, 0, []Item{}},
		{"right edge is inclusive", Item{X: 240, Y: 290}, 1, 0, []Item{}},
		{"just right of the basket", Item{X: 240.5, Y: 290}, 0, 0, []Item{{X: 240.5, Y: 292}}},
		{"above the catch zone", Item{X: 200, Y: 270}, 0, 0, []Item{{X: 200, Y: 272}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, stubRand{})
			g.items = []Item{tc.item}

			if err := g.Update(); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if g.Score() != tc.wantScore {
				t.Errorf("Score = %d, expected %d", g.Score(), tc.wantScore)
			}
			if g.Missed() != tc.wantMissed {
				t.Errorf("Missed = %d, expected %d", g.Missed(), tc.wantMissed)
			}
			if got := g.Items(); !reflect.DeepEqual(got, tc.wantItems) {
				t.Errorf("Items = %v, expected %v", got, tc.wantItems)
			}
		})
	}
}

func TestUpdateSpawn(t *testing.T) {
	g, _ := newTestGame(t, stubRand{spawn: true, x: 0.5})

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	items := g.Items()
	if len(items) != 1 {
		t.Fatalf("Items = %v, expected one spawned item", items)
	}
	// Spawned at the top, then advanced in the same frame.
	if items[0] != (Item{X: 200, Y: 2}) {
		t.Errorf("Item = %+v, expected {200 2}", items[0])
	}
}

func TestUpdateNoSpawn(t *testing.T) {
	g, _ := newTestGame(t, stubRand{})
	for i := 0; i < 50; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if len(g.Items()) != 0 {
		t.Errorf("Items = %v, expected none", g.Items())
	}
	if g.Frame() != 50 {
		t.Errorf("Frame = %d, expected 50", g.Frame())
	}
}

func TestSpawnAtMostOnePerFrame(t *testing.T) {
	g, _ := newTestGame(t, stubRand{spawn: true, x: 0.999})

	prev := 0
	for i := 0; i < 400; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		n := len(g.Items())
		if n > prev+1 {
			t.Fatalf("frame %d: items grew from %d to %d", i, prev, n)
		}
		prev = n
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	g, _ := newTestGame(t, rand.New(rand.NewSource(7)))
	moves := rand.New(rand.NewSource(99))

	prevScore := 0
	for i := 0; i < 5000; i++ {
		switch moves.Intn(3) {
		case 0:
			g.MoveBasket(Left)
		case 1:
			g.MoveBasket(Right)
		}
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if g.Score() < prevScore {
			t.Fatalf("frame %d: score decreased from %d to %d", i, prevScore, g.Score())
		}
		prevScore = g.Score()

		if g.BasketX() < 0 || g.BasketX()+g.BasketWidth() > g.Width() {
			t.Fatalf("frame %d: basket out of bounds at %g", i, g.BasketX())
		}
		for _, it := range g.Items() {
			if it.X < 0 || it.X >= g.Width() || it.Y < 0 || it.Y >= g.Height() {
				t.Fatalf("frame %d: item out of bounds: %+v", i, it)
			}
		}
	}
	if g.Score()+g.Missed() == 0 {
		t.Error("5000 frames should resolve at least one item")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _ := newTestGame(t, rand.New(rand.NewSource(12345)))
		for i := 0; i < 1000; i++ {
			if i%7 == 0 {
				g.MoveBasket(Left)
			}
			if i%11 == 0 {
				g.MoveBasket(Right)
			}
			if err := g.Update(); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed:\n%+v\n%+v", s1, s2)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	g, _ := newTestGame(t, stubRand{})
	g.items = []Item{{X: 10, Y: 10}}

	items := g.Items()
	items[0].Y = 999
	if g.items[0].Y != 10 {
		t.Error("Items() should not alias game state")
	}
}
