package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

const (
	// DefaultWidth is the width of the paper in pixels.
	DefaultWidth = 800
	// DefaultHeight is the height of the paper in pixels.
	DefaultHeight = 1000
)

// Surface is the target for the paper renderer.
//
// Coordinates are in pixels relative to the top left corner of Bounds.
type Surface interface {
	Bounds() image.Rectangle
	// Fill paints the complete surface with the given color.
	Fill(c color.Color)
	// Line strokes a straight line with the given width.
	Line(x0, y0, x1, y1 float64, c color.Color, width float64)
	// Dot paints a filled circle.
	Dot(x, y, radius float64, c color.Color)
}

// Raster is a Surface backed by an RGBA image.
type Raster struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext
}

// NewRaster creates a transparent raster with the given size.
func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineCap(draw2d.ButtCap)
	return &Raster{
		img: img,
		gc:  gc,
	}
}

func (r *Raster) Bounds() image.Rectangle {
	return r.img.Bounds()
}

// Image returns the underlying image.
// It is changed by subsequent drawing operations.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Fill replaces all pixels with the given color.
func (r *Raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) Line(x0, y0, x1, y1 float64, c color.Color, width float64) {
	r.gc.SetStrokeColor(c)
	r.gc.SetLineWidth(width)
	r.gc.BeginPath()
	r.gc.MoveTo(x0, y0)
	r.gc.LineTo(x1, y1)
	r.gc.Stroke()
}

func (r *Raster) Dot(x, y, radius float64, c color.Color) {
	r.gc.SetFillColor(c)
	r.gc.BeginPath()
	draw2dkit.Circle(r.gc, x, y, radius)
	r.gc.Fill()
}

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpFill OpKind = iota
	OpLine
	OpDot
)

// Op is a single recorded drawing operation.
//
// Lines use X0, Y0, X1, Y1 and Width; dots use X0, Y0 and Radius.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	Width  float64
	Radius float64
	Color  color.Color
}

// Recorder is a Surface which keeps a list of all operations instead of
// painting them.
type Recorder struct {
	bounds image.Rectangle
	Ops    []Op
}

// NewRecorder creates an empty recording surface with the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		bounds: image.Rect(0, 0, width, height),
		Ops:    make([]Op, 0),
	}
}

func (r *Recorder) Bounds() image.Rectangle {
	return r.bounds
}

func (r *Recorder) Fill(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c})
}

func (r *Recorder) Line(x0, y0, x1, y1 float64, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{
		Kind:  OpLine,
		X0:    x0,
		Y0:    y0,
		X1:    x1,
		Y1:    y1,
		Width: width,
		Color: c,
	})
}

func (r *Recorder) Dot(x, y, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpDot,
		X0:     x,
		Y0:     y,
		Radius: radius,
		Color:  c,
	})
}

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(k OpKind) []Op {
	l := make([]Op, 0)
	for _, op := range r.Ops {
		if op.Kind == k {
			l = append(l, op)
		}
	}
	return l
}

// Replay paints all recorded operations onto another surface.
func (r *Recorder) Replay(dst Surface) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpFill:
			dst.Fill(op.Color)
		case OpLine:
			dst.Line(op.X0, op.Y0, op.X1, op.Y1, op.Color, op.Width)
		case OpDot:
			dst.Dot(op.X0, op.Y0, op.Radius, op.Color)
		}
	}
}
