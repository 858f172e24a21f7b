package tui

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/basket-catch/internal/canvas"
	"github.com/vovakirdan/basket-catch/internal/core"
)

// halfBlock paints the upper pixel of a cell in FG and the lower one in BG.
const halfBlock = '▀'

// CellSurface is a canvas.Surface that rasterizes onto terminal cells.
// A cols x rows grid holds cols x 2*rows pixels, two stacked per cell.
// Text is not scaled: each rune takes one cell on the row holding its baseline.
type CellSurface struct {
	width, height float64 // logical canvas size
	cols, rows    int
	pixels        []core.Color
	glyphs        map[int]glyph

	style canvas.Style
	font  canvas.Font
	path  canvas.Path
}

type glyph struct {
	r  rune
	fg core.Color
}

var _ canvas.Surface = (*CellSurface)(nil)

// NewCellSurface maps a width x height canvas onto a cols x rows cell grid.
func NewCellSurface(width, height float64, cols, rows int) *CellSurface {
	s := &CellSurface{
		width:  width,
		height: height,
		style:  canvas.Solid{},
		font:   canvas.DefaultFont,
	}
	s.Resize(cols, rows)
	return s
}

// Resize re-maps the canvas onto a new grid. Pixels are cleared; the next
// frame repaints them.
func (s *CellSurface) Resize(cols, rows int) {
	s.cols = core.Max(cols, 0)
	s.rows = core.Max(rows, 0)
	s.pixels = make([]core.Color, s.cols*s.rows*2)
	for i := range s.pixels {
		s.pixels[i] = core.ColorDefault
	}
	s.glyphs = make(map[int]glyph)
}

// Cols returns the grid width in cells.
func (s *CellSurface) Cols() int { return s.cols }

// Rows returns the grid height in cells.
func (s *CellSurface) Rows() int { return s.rows }

// Width implements canvas.Surface.
func (s *CellSurface) Width() float64 { return s.width }

// Height implements canvas.Surface.
func (s *CellSurface) Height() float64 { return s.height }

// SetFillStyle implements canvas.Surface.
func (s *CellSurface) SetFillStyle(style canvas.Style) {
	s.style = style
}

// FillRect implements canvas.Surface.
func (s *CellSurface) FillRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	px := s.pixelRect(x, y, x+w, y+h)
	for py := px.Y; py < px.Bottom(); py++ {
		for pxx := px.X; pxx < px.Right(); pxx++ {
			cx, cy := s.center(pxx, py)
			if cx >= x && cx < x+w && cy >= y && cy < y+h {
				s.paint(pxx, py, cx, cy)
			}
		}
	}
}

// CreateLinearGradient implements canvas.Surface.
func (s *CellSurface) CreateLinearGradient(x0, y0, x1, y1 float64) *canvas.Gradient {
	return canvas.NewLinearGradient(x0, y0, x1, y1)
}

// CreateRadialGradient implements canvas.Surface.
func (s *CellSurface) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*canvas.Gradient, error) {
	return canvas.NewRadialGradient(x0, y0, r0, x1, y1, r1)
}

// BeginPath implements canvas.Surface.
func (s *CellSurface) BeginPath() {
	s.path.Reset()
}

// Arc implements canvas.Surface.
func (s *CellSurface) Arc(x, y, radius, startAngle, endAngle float64) error {
	return s.path.Arc(x, y, radius, startAngle, endAngle)
}

// Fill implements canvas.Surface.
func (s *CellSurface) Fill() {
	minX, minY, maxX, maxY, ok := s.path.Bounds()
	if !ok {
		return
	}
	px := s.pixelRect(minX, minY, maxX, maxY)
	for py := px.Y; py < px.Bottom(); py++ {
		for pxx := px.X; pxx < px.Right(); pxx++ {
			cx, cy := s.center(pxx, py)
			if s.path.Contains(cx, cy) {
				s.paint(pxx, py, cx, cy)
			}
		}
	}
}

// SetFont implements canvas.Surface. Cells have a fixed size, so only the
// parsed font is kept; invalid fonts are ignored.
func (s *CellSurface) SetFont(font string) {
	if f, err := canvas.ParseFont(font); err == nil {
		s.font = f
	}
}

// FillText implements canvas.Surface.
func (s *CellSurface) FillText(text string, x, y float64) error {
	if s.cols == 0 || s.rows == 0 {
		return nil
	}
	c, ok := s.style.ColorAt(x, y)
	if !ok {
		return nil
	}
	fg := toCore(c)

	col := int(math.Floor(x / s.width * float64(s.cols)))
	row := core.Clamp(int(math.Floor(y/s.height*float64(s.rows))), 0, s.rows-1)
	for _, r := range text {
		if col >= s.cols {
			break
		}
		if col >= 0 {
			s.glyphs[row*s.cols+col] = glyph{r: r, fg: fg}
		}
		col++
	}
	return nil
}

// Flush copies the grid into screen, resizing it to match.
func (s *CellSurface) Flush(screen *core.Screen) {
	if screen.Width() != s.cols || screen.Height() != s.rows {
		screen.Resize(s.cols, s.rows)
	}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pixels[(2*row)*s.cols+col]
			bottom := s.pixels[(2*row+1)*s.cols+col]
			if g, ok := s.glyphs[row*s.cols+col]; ok {
				screen.SetCell(col, row, core.Cell{Rune: g.r, FG: g.fg, BG: top})
				continue
			}
			screen.SetCell(col, row, core.Cell{Rune: halfBlock, FG: top, BG: bottom})
		}
	}
}

// pixelRect returns the pixels whose centers may fall in [x0,x1) x [y0,y1),
// clipped to the grid.
func (s *CellSurface) pixelRect(x0, y0, x1, y1 float64) core.Rect {
	if s.cols == 0 || s.rows == 0 {
		return core.Rect{}
	}
	sx := s.width / float64(s.cols)
	sy := s.height / float64(s.rows*2)
	px0 := int(math.Floor(x0/sx - 0.5))
	py0 := int(math.Floor(y0/sy - 0.5))
	px1 := int(math.Ceil(x1/sx + 0.5))
	py1 := int(math.Ceil(y1/sy + 0.5))
	r := core.NewRect(px0, py0, px1-px0, py1-py0)
	return r.Intersect(core.NewRect(0, 0, s.cols, s.rows*2))
}

// center returns the canvas position of a pixel center.
func (s *CellSurface) center(px, py int) (float64, float64) {
	return (float64(px) + 0.5) * s.width / float64(s.cols),
		(float64(py) + 0.5) * s.height / float64(s.rows*2)
}

// paint sets one pixel from the current style and drops any glyph over it.
func (s *CellSurface) paint(px, py int, cx, cy float64) {
	c, ok := s.style.ColorAt(cx, cy)
	if !ok {
		return
	}
	s.pixels[py*s.cols+px] = toCore(c)
	delete(s.glyphs, (py/2)*s.cols+px)
}

func toCore(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b)
}
