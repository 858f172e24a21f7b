package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// Font is a parsed CSS font shorthand, e.g. "bold 20px sans-serif".
type Font struct {
	Size   float64 // pixels
	Family string
	Bold   bool
	Italic bool
}

// DefaultFont is the font a fresh surface starts with.
var DefaultFont = Font{Size: 10, Family: "sans-serif"}

// ParseFont parses "[style] [weight] <size>px <family>".
func ParseFont(s string) (Font, error) {
	fields := strings.Fields(s)
	var f Font
	for i, field := range fields {
		lower := strings.ToLower(field)
		switch lower {
		case "bold", "bolder", "700", "800", "900":
			f.Bold = true
			continue
		case "italic", "oblique":
			f.Italic = true
			continue
		case "normal":
			continue
		}
		if !strings.HasSuffix(lower, "px") {
			return Font{}, fmt.Errorf("%w: %q", ErrInvalidFont, s)
		}
		size, err := strconv.ParseFloat(strings.TrimSuffix(lower, "px"), 64)
		if err != nil || size <= 0 {
			return Font{}, fmt.Errorf("%w: %q", ErrInvalidFont, s)
		}
		family := strings.Join(fields[i+1:], " ")
		if family == "" {
			return Font{}, fmt.Errorf("%w: %q: missing family", ErrInvalidFont, s)
		}
		f.Size = size
		f.Family = strings.Trim(family, `"'`)
		return f, nil
	}
	return Font{}, fmt.Errorf("%w: %q: missing size", ErrInvalidFont, s)
}

// String formats the font back into CSS shorthand.
func (f Font) String() string {
	var parts []string
	if f.Italic {
		parts = append(parts, "italic")
	}
	if f.Bold {
		parts = append(parts, "bold")
	}
	parts = append(parts, strconv.FormatFloat(f.Size, 'f', -1, 64)+"px", f.Family)
	return strings.Join(parts, " ")
}

// Monospace reports whether the family asks for a fixed-width face.
func (f Font) Monospace() bool {
	family := strings.ToLower(f.Family)
	return strings.Contains(family, "mono") || strings.Contains(family, "courier")
}
