package canvas

import (
	"fmt"
	"math"
)

// arcSegments is the number of line segments used for a full circle.
const arcSegments = 64

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Path is a single subpath built from arcs and flattened to a polygon.
// Consecutive arcs join with straight lines, as on an HTML canvas.
type Path struct {
	points []Point
}

// Reset discards every point.
func (p *Path) Reset() {
	p.points = p.points[:0]
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	return len(p.points) == 0
}

// Points returns a copy of the flattened outline.
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Arc appends a clockwise arc around (x, y).
// A sweep of 2π or more draws a full circle.
func (p *Path) Arc(x, y, radius, startAngle, endAngle float64) error {
	if radius < 0 {
		return fmt.Errorf("%w: arc radius %g", ErrNegativeRadius, radius)
	}
	sweep := ArcSweep(startAngle, endAngle)
	n := int(math.Ceil(sweep / (2 * math.Pi) * arcSegments))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		p.points = append(p.points, Point{X: x + radius*math.Cos(a), Y: y + radius*math.Sin(a)})
	}
	return nil
}

// ArcSweep returns the clockwise angle swept from start to end,
// clamped to one full turn.
func ArcSweep(startAngle, endAngle float64) float64 {
	sweep := endAngle - startAngle
	if sweep >= 2*math.Pi {
		return 2 * math.Pi
	}
	sweep = math.Mod(sweep, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	return sweep
}

// Bounds returns the bounding box of the path.
// ok is false for an empty path.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pt := range p.points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY, true
}

// Contains reports whether (x, y) is inside the implicitly closed path
// under the nonzero winding rule.
func (p *Path) Contains(x, y float64) bool {
	n := len(p.points)
	if n < 3 {
		return false
	}
	winding := 0
	for i := 0; i < n; i++ {
		a := p.points[i]
		b := p.points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
		if a.Y <= y {
			if b.Y > y && cross > 0 {
				winding++
			}
		} else if b.Y <= y && cross < 0 {
			winding--
		}
	}
	return winding != 0
}
