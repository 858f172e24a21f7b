package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	_ Surface = (*ImageSurface)(nil)
	_ Surface = (*Recorder)(nil)
)

// ImageSurface is a raster Surface backed by a gg context.
type ImageSurface struct {
	dc     *gg.Context
	width  int
	height int
	style  Style
	font   Font
	arcs   [][5]float64 // current path, replayed after FillRect
	faces  map[Font]font.Face
}

// NewImageSurface creates an RGBA surface of the given pixel size.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid image size %dx%d", width, height)
	}
	return &ImageSurface{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		style:  Solid{},
		font:   DefaultFont,
		faces:  make(map[Font]font.Face),
	}, nil
}

// Width implements Surface.
func (s *ImageSurface) Width() float64 { return float64(s.width) }

// Height implements Surface.
func (s *ImageSurface) Height() float64 { return float64(s.height) }

// SetFillStyle implements Surface.
func (s *ImageSurface) SetFillStyle(style Style) {
	s.style = style
}

// FillRect implements Surface.
func (s *ImageSurface) FillRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetFillStyle(stylePattern{s.style})
	s.dc.Fill()
	s.replayPath()
}

// CreateLinearGradient implements Surface.
func (s *ImageSurface) CreateLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return NewLinearGradient(x0, y0, x1, y1)
}

// CreateRadialGradient implements Surface.
func (s *ImageSurface) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	return NewRadialGradient(x0, y0, r0, x1, y1, r1)
}

// BeginPath implements Surface.
func (s *ImageSurface) BeginPath() {
	s.arcs = s.arcs[:0]
	s.dc.ClearPath()
}

// Arc implements Surface.
func (s *ImageSurface) Arc(x, y, radius, startAngle, endAngle float64) error {
	if radius < 0 {
		return fmt.Errorf("%w: arc radius %g", ErrNegativeRadius, radius)
	}
	arc := [5]float64{x, y, radius, startAngle, startAngle + ArcSweep(startAngle, endAngle)}
	s.arcs = append(s.arcs, arc)
	s.dc.DrawArc(arc[0], arc[1], arc[2], arc[3], arc[4])
	return nil
}

// Fill implements Surface. The path survives the fill.
func (s *ImageSurface) Fill() {
	s.dc.SetFillStyle(stylePattern{s.style})
	s.dc.FillPreserve()
}

// SetFont implements Surface. Invalid fonts are ignored.
func (s *ImageSurface) SetFont(f string) {
	parsed, err := ParseFont(f)
	if err != nil {
		return
	}
	s.font = parsed
}

// FillText implements Surface.
func (s *ImageSurface) FillText(text string, x, y float64) error {
	face, err := s.face(s.font)
	if err != nil {
		return err
	}
	c, ok := s.style.ColorAt(x, y)
	if !ok {
		return nil
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	s.dc.DrawString(text, x, y)
	return nil
}

// Image returns the backing pixels. The image is live: later draws show up.
func (s *ImageSurface) Image() *image.RGBA {
	rgba, _ := s.dc.Image().(*image.RGBA) // gg always allocates RGBA
	return rgba
}

// SavePNG writes the current pixels to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: cannot save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the current pixels as PNG to w.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canvas: cannot encode png: %w", err)
	}
	return nil
}

// replayPath restores the current path after an op that consumed it.
func (s *ImageSurface) replayPath() {
	for _, a := range s.arcs {
		s.dc.DrawArc(a[0], a[1], a[2], a[3], a[4])
	}
}

func (s *ImageSurface) face(f Font) (font.Face, error) {
	if face, ok := s.faces[f]; ok {
		return face, nil
	}
	ttf, err := fontFor(f)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: f.Size, DPI: 72})
	s.faces[f] = face
	return face, nil
}

var (
	fontsOnce sync.Once
	fontsErr  error
	fontSet   struct {
		regular, bold, mono *truetype.Font
	}
)

// fontFor maps a CSS family onto the bundled Go fonts.
func fontFor(f Font) (*truetype.Font, error) {
	fontsOnce.Do(func() {
		if fontSet.regular, fontsErr = truetype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		if fontSet.bold, fontsErr = truetype.Parse(gobold.TTF); fontsErr != nil {
			return
		}
		fontSet.mono, fontsErr = truetype.Parse(gomono.TTF)
	})
	if fontsErr != nil {
		return nil, fmt.Errorf("canvas: cannot load fonts: %w", fontsErr)
	}
	switch {
	case f.Monospace():
		return fontSet.mono, nil
	case f.Bold:
		return fontSet.bold, nil
	default:
		return fontSet.regular, nil
	}
}

// stylePattern adapts a Style to gg's pixel pattern, sampling pixel centers.
type stylePattern struct {
	style Style
}

func (p stylePattern) ColorAt(x, y int) color.Color {
	c, ok := p.style.ColorAt(float64(x)+0.5, float64(y)+0.5)
	if !ok {
		return color.Transparent
	}
	return c.Clamped()
}
