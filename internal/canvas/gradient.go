package canvas

import (
	"fmt"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientKind distinguishes linear from radial gradients.
type GradientKind int

const (
	LinearGradient GradientKind = iota
	RadialGradient
)

// String returns a human-readable name for the kind.
func (k GradientKind) String() string {
	switch k {
	case LinearGradient:
		return "linear"
	case RadialGradient:
		return "radial"
	default:
		return "unknown"
	}
}

// ColorStop is one entry of a gradient's color ramp.
type ColorStop struct {
	Offset float64
	Color  colorful.Color
}

// Gradient is a linear or two-circle radial color ramp in canvas space.
// Outside the ramp the end colors extend (pad spread).
type Gradient struct {
	Kind       GradientKind
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	stops      []ColorStop
}

// NewLinearGradient returns a gradient along the line (x0,y0)-(x1,y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{Kind: LinearGradient, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// NewRadialGradient returns a gradient from circle (x0,y0,r0) to (x1,y1,r1).
// Negative radii are rejected.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	if r0 < 0 || r1 < 0 {
		return nil, fmt.Errorf("%w: radial gradient radii %g, %g", ErrNegativeRadius, r0, r1)
	}
	return &Gradient{Kind: RadialGradient, X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}, nil
}

// AddColorStop inserts a color at offset in [0, 1].
// Stops with equal offsets keep insertion order.
func (g *Gradient) AddColorStop(offset float64, color string) error {
	if !(offset >= 0 && offset <= 1) {
		return fmt.Errorf("%w: %g", ErrStopOutOfRange, offset)
	}
	c, err := parseColor(color)
	if err != nil {
		return err
	}
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = ColorStop{Offset: offset, Color: c}
	return nil
}

// Stops returns a copy of the color ramp in offset order.
func (g *Gradient) Stops() []ColorStop {
	out := make([]ColorStop, len(g.stops))
	copy(out, g.stops)
	return out
}

// ColorAt implements Style.
func (g *Gradient) ColorAt(x, y float64) (colorful.Color, bool) {
	var (
		t  float64
		ok bool
	)
	switch g.Kind {
	case LinearGradient:
		t, ok = g.linearT(x, y)
	case RadialGradient:
		t, ok = g.radialT(x, y)
	}
	if !ok {
		return colorful.Color{}, false
	}
	return g.rampAt(t)
}

// linearT projects (x, y) onto the gradient line.
func (g *Gradient) linearT(x, y float64) (float64, bool) {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	den := dx*dx + dy*dy
	if den == 0 {
		return 0, false
	}
	return ((x-g.X0)*dx + (y-g.Y0)*dy) / den, true
}

// radialT finds the largest t whose interpolated circle passes through
// (x, y) with a non-negative radius.
func (g *Gradient) radialT(x, y float64) (float64, bool) {
	cdx, cdy := g.X1-g.X0, g.Y1-g.Y0
	dr := g.R1 - g.R0
	if cdx == 0 && cdy == 0 && dr == 0 {
		return 0, false
	}
	pdx, pdy := x-g.X0, y-g.Y0

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.R0*dr
	c := pdx*pdx + pdy*pdy - g.R0*g.R0

	radius := func(t float64) float64 { return g.R0 + t*dr }

	if a == 0 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		if radius(t) < 0 {
			return 0, false
		}
		return t, true
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1, t2 := (b+sq)/a, (b-sq)/a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if radius(t1) >= 0 {
		return t1, true
	}
	if radius(t2) >= 0 {
		return t2, true
	}
	return 0, false
}

// rampAt interpolates the color ramp at t, padding outside [0, 1].
func (g *Gradient) rampAt(t float64) (colorful.Color, bool) {
	n := len(g.stops)
	if n == 0 {
		return colorful.Color{}, false
	}
	t = math.Max(0, math.Min(1, t))
	if t <= g.stops[0].Offset {
		return g.stops[0].Color, true
	}
	if t >= g.stops[n-1].Offset {
		return g.stops[n-1].Color, true
	}
	j := sort.Search(n, func(i int) bool { return g.stops[i].Offset > t })
	a, b := g.stops[j-1], g.stops[j]
	if b.Offset == a.Offset {
		return b.Color, true
	}
	return a.Color.BlendRgb(b.Color, (t-a.Offset)/(b.Offset-a.Offset)), true
}
