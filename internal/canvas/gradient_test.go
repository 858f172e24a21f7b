package canvas

import (
	"errors"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func hexAt(t *testing.T, s Style, x, y float64) string {
	t.Helper()
	c, ok := s.ColorAt(x, y)
	if !ok {
		t.Fatalf("ColorAt(%g, %g) painted nothing", x, y)
	}
	return c.Clamped().Hex()
}

func TestAddColorStopRange(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)

	for _, off := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		if err := g.AddColorStop(off, "#000000"); !errors.Is(err, ErrStopOutOfRange) {
			t.Errorf("AddColorStop(%g) error = %v, expected ErrStopOutOfRange", off, err)
		}
	}
	if err := g.AddColorStop(0.5, "nope"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("AddColorStop with bad color error = %v, expected ErrInvalidColor", err)
	}
	if len(g.Stops()) != 0 {
		t.Errorf("Rejected stops should not be added, got %d", len(g.Stops()))
	}
}

func TestAddColorStopOrdering(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	for _, s := range []struct {
		off float64
		c   string
	}{{1, "#0000ff"}, {0, "#ff0000"}, {0.5, "#00ff00"}, {0.5, "#ffffff"}} {
		if err := g.AddColorStop(s.off, s.c); err != nil {
			t.Fatalf("AddColorStop(%g, %s) failed: %v", s.off, s.c, err)
		}
	}

	stops := g.Stops()
	want := []string{"#ff0000", "#00ff00", "#ffffff", "#0000ff"}
	for i, s := range stops {
		if s.Color.Hex() != want[i] {
			t.Errorf("stop %d = %s, expected %s", i, s.Color.Hex(), want[i])
		}
	}
}

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0)
	_ = g.AddColorStop(0, "#005A9C")
	_ = g.AddColorStop(0.5, "#00A2FF")
	_ = g.AddColorStop(1, "#005A9C")

	if got := hexAt(t, g, 0, 0); got != "#005a9c" {
		t.Errorf("start = %s, expected #005a9c", got)
	}
	if got := hexAt(t, g, 50, 7); got != "#00a2ff" {
		t.Errorf("middle = %s, expected #00a2ff", got)
	}
	if got := hexAt(t, g, 100, 0); got != "#005a9c" {
		t.Errorf("end = %s, expected #005a9c", got)
	}
	// Pad spread outside the line
	if got := hexAt(t, g, -40, 0); got != "#005a9c" {
		t.Errorf("before start = %s, expected #005a9c", got)
	}

	// Halfway between edge and center is a blend
	quarter, _ := g.ColorAt(25, 0)
	edge := MustParseColor("#005A9C")
	center := MustParseColor("#00A2FF")
	want := colorful.Color(edge).BlendRgb(colorful.Color(center), 0.5)
	if quarter.Hex() != want.Hex() {
		t.Errorf("quarter = %s, expected %s", quarter.Hex(), want.Hex())
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	g := NewLinearGradient(5, 5, 5, 5)
	_ = g.AddColorStop(0, "#ffffff")
	if _, ok := g.ColorAt(5, 5); ok {
		t.Error("Zero-length linear gradient should paint nothing")
	}
}

func TestGradientWithoutStops(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	if _, ok := g.ColorAt(5, 0); ok {
		t.Error("Gradient without stops should paint nothing")
	}
}

func TestRadialGradientSphere(t *testing.T) {
	// Same geometry as a falling item at (100, 100)
	g, err := NewRadialGradient(98, 98, 2, 100, 100, 10)
	if err != nil {
		t.Fatalf("NewRadialGradient failed: %v", err)
	}
	_ = g.AddColorStop(0, "#FF6347")
	_ = g.AddColorStop(1, "#8B0000")

	if got := hexAt(t, g, 98, 98); got != "#ff6347" {
		t.Errorf("highlight center = %s, expected #ff6347", got)
	}
	if got := hexAt(t, g, 110, 100); got != "#8b0000" {
		t.Errorf("outer rim = %s, expected #8b0000", got)
	}

	// Brighter toward the upper-left than the lower-right
	ul, _ := g.ColorAt(96, 96)
	lr, _ := g.ColorAt(104, 104)
	if ul.R <= lr.R {
		t.Errorf("upper-left red %f should exceed lower-right red %f", ul.R, lr.R)
	}
}

func TestRadialGradientConcentric(t *testing.T) {
	g, err := NewRadialGradient(0, 0, 0, 0, 0, 10)
	if err != nil {
		t.Fatalf("NewRadialGradient failed: %v", err)
	}
	_ = g.AddColorStop(0, "#000000")
	_ = g.AddColorStop(1, "#ffffff")

	c, ok := g.ColorAt(5, 0)
	if !ok {
		t.Fatal("Concentric gradient should paint at half radius")
	}
	if math.Abs(c.R-0.5) > 1e-9 {
		t.Errorf("half radius red = %f, expected 0.5", c.R)
	}
}

func TestRadialGradientNegativeRadius(t *testing.T) {
	if _, err := NewRadialGradient(0, 0, -1, 0, 0, 10); !errors.Is(err, ErrNegativeRadius) {
		t.Errorf("error = %v, expected ErrNegativeRadius", err)
	}
}
