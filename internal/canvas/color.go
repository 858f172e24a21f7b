package canvas

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Style is a fill paint: a solid color or a gradient.
type Style interface {
	// ColorAt returns the paint at canvas point (x, y).
	// ok is false where the style paints nothing.
	ColorAt(x, y float64) (c colorful.Color, ok bool)
}

// Solid is a single opaque color.
type Solid colorful.Color

// ColorAt implements Style.
func (s Solid) ColorAt(_, _ float64) (colorful.Color, bool) {
	return colorful.Color(s), true
}

// Hex returns the color as "#rrggbb".
func (s Solid) Hex() string {
	return colorful.Color(s).Hex()
}

// ParseColor parses a CSS color: "#rgb", "#rrggbb", or a named color
// such as "white".
func ParseColor(s string) (Solid, error) {
	c, err := parseColor(s)
	if err != nil {
		return Solid{}, err
	}
	return Solid(c), nil
}

// MustParseColor is like ParseColor but panics on error.
// Intended for package-level constants.
func MustParseColor(s string) Solid {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseColor(s string) (colorful.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		if len(name) != 4 && len(name) != 7 {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		c, err := colorful.Hex(name)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}
	if rgba, ok := colornames.Map[name]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}
