package canvas

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpSetFillStyle OpKind = iota
	OpFillRect
	OpBeginPath
	OpArc
	OpFill
	OpSetFont
	OpFillText
)

// String returns the canvas method name for the op.
func (k OpKind) String() string {
	switch k {
	case OpSetFillStyle:
		return "fillStyle"
	case OpFillRect:
		return "fillRect"
	case OpBeginPath:
		return "beginPath"
	case OpArc:
		return "arc"
	case OpFill:
		return "fill"
	case OpSetFont:
		return "font"
	case OpFillText:
		return "fillText"
	default:
		return "unknown"
	}
}

// Op is one recorded call. Args holds the numeric arguments in call order.
type Op struct {
	Kind  OpKind
	Args  []float64
	Text  string // text for FillText, font for SetFont
	Style Style  // style for SetFillStyle and the active style for paint ops
}

// Recorder is a Surface that keeps every call instead of drawing.
// It validates arguments the same way the raster surfaces do.
type Recorder struct {
	width, height float64
	ops           []Op
	style         Style
	font          Font
	path          Path
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		style:  Solid{},
		font:   DefaultFont,
	}
}

// Width implements Surface.
func (r *Recorder) Width() float64 { return r.width }

// Height implements Surface.
func (r *Recorder) Height() float64 { return r.height }

// SetFillStyle implements Surface.
func (r *Recorder) SetFillStyle(style Style) {
	r.style = style
	r.ops = append(r.ops, Op{Kind: OpSetFillStyle, Style: style})
}

// FillRect implements Surface.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Args: []float64{x, y, w, h}, Style: r.style})
}

// CreateLinearGradient implements Surface.
func (r *Recorder) CreateLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return NewLinearGradient(x0, y0, x1, y1)
}

// CreateRadialGradient implements Surface.
func (r *Recorder) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	return NewRadialGradient(x0, y0, r0, x1, y1, r1)
}

// BeginPath implements Surface.
func (r *Recorder) BeginPath() {
	r.path.Reset()
	r.ops = append(r.ops, Op{Kind: OpBeginPath})
}

// Arc implements Surface.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) error {
	if err := r.path.Arc(x, y, radius, startAngle, endAngle); err != nil {
		return err
	}
	r.ops = append(r.ops, Op{Kind: OpArc, Args: []float64{x, y, radius, startAngle, endAngle}})
	return nil
}

// Fill implements Surface.
func (r *Recorder) Fill() {
	r.ops = append(r.ops, Op{Kind: OpFill, Style: r.style})
}

// SetFont implements Surface. Invalid fonts are ignored, as on a canvas.
func (r *Recorder) SetFont(font string) {
	f, err := ParseFont(font)
	if err != nil {
		return
	}
	r.font = f
	r.ops = append(r.ops, Op{Kind: OpSetFont, Text: font})
}

// FillText implements Surface.
func (r *Recorder) FillText(text string, x, y float64) error {
	r.ops = append(r.ops, Op{Kind: OpFillText, Args: []float64{x, y}, Text: text, Style: r.style})
	return nil
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Font returns the current font.
func (r *Recorder) Font() Font {
	return r.font
}

// Path returns the current path.
func (r *Recorder) Path() *Path {
	return &r.path
}

// Reset drops the recorded calls but keeps the current state.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
