package core

import "fmt"

// Color is a 24-bit RGB value packed as 0xRRGGBB.
// ColorDefault leaves the terminal's own color in place.
type Color uint32

// ColorDefault means "no color set" for a cell foreground or background.
const ColorDefault Color = 1 << 24

// Common colors used by the HUD and tests.
const (
	ColorBlack Color = 0x000000
	ColorWhite Color = 0xFFFFFF
)

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns the individual channels of c.
// ColorDefault reports black.
func (c Color) RGB() (r, g, b uint8) {
	if c == ColorDefault {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns c as "#rrggbb", or an empty string for ColorDefault.
func (c Color) Hex() string {
	if c == ColorDefault {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
