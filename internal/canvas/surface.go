// Package canvas defines the 2D drawing surface the basket game renders to,
// along with the paint, font, and path types every surface shares.
//
// The Surface contract mirrors the small subset of an HTML canvas 2D context
// the game needs. Hosts provide a concrete surface: a gg-backed raster image
// (ImageSurface), a terminal cell grid (see platform/tui), or a Recorder that
// keeps the op stream for inspection.
package canvas

import "errors"

// Errors reported by surfaces and paint constructors. They indicate an
// integration problem with the drawing environment, not a game-logic error.
var (
	ErrStopOutOfRange = errors.New("canvas: color stop offset out of range")
	ErrInvalidColor   = errors.New("canvas: invalid color")
	ErrNegativeRadius = errors.New("canvas: negative radius")
	ErrInvalidFont    = errors.New("canvas: invalid font")
)

// Surface is an addressable 2D drawing target with a fixed size.
// Coordinates are in canvas units with the origin at the top-left corner.
type Surface interface {
	// Width returns the drawing width in canvas units.
	Width() float64
	// Height returns the drawing height in canvas units.
	Height() float64

	// SetFillStyle sets the paint used by FillRect, Fill and FillText.
	SetFillStyle(style Style)
	// FillRect paints a rectangle with the current fill style.
	// It does not touch the current path.
	FillRect(x, y, w, h float64)

	// CreateLinearGradient returns a gradient along the line (x0,y0)-(x1,y1).
	CreateLinearGradient(x0, y0, x1, y1 float64) *Gradient
	// CreateRadialGradient returns a gradient between two circles.
	CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error)

	// BeginPath discards the current path.
	BeginPath()
	// Arc adds a clockwise circular arc to the current path.
	Arc(x, y, radius, startAngle, endAngle float64) error
	// Fill paints the interior of the current path (nonzero rule).
	Fill()

	// SetFont sets the font used by FillText, as a CSS shorthand such as
	// "20px sans-serif". Unparsable values are ignored.
	SetFont(font string)
	// FillText draws text with its alphabetic baseline at (x, y).
	FillText(text string, x, y float64) error
}
