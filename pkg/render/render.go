package render

import (
	"image"
	"image/png"
	"io"

	"github.com/akeil/journal"
)

// Fixed paper geometry, in pixels.
const (
	// EdgeInset is the distance of grids, dots and ruled lines from the
	// right edge and of grids and dots from the left edge.
	EdgeInset = 40
	// RuleStart is where ruled lines begin, right of the margin.
	RuleStart = 60
	// MarginX is the position of the vertical margin rule.
	MarginX = 50
	// MarginWidth is the stroke width of the margin rule.
	MarginWidth = 2
	// CollegeSpacing is the line spacing for college ruled paper.
	CollegeSpacing = 24
	// DotRadius is the radius of the dots on dotted paper.
	DotRadius = 1.5
)

// MarginColor is the color of the margin rule on ruled paper.
var MarginColor = journal.MustParseColor("#ff6b6b")

// Paint draws the paper background for the given config onto the surface.
//
// The surface is painted in full; previous content is replaced.
// Non-positive spacing or line widths skip the repeating pattern.
func Paint(s Surface, c journal.PaperConfig) {
	b := s.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	s.Fill(c.PaperColor)

	switch c.Pattern {
	case journal.Lined:
		paintRuled(s, c, float64(c.LineSpacing), w, h)
	case journal.College:
		paintRuled(s, c, CollegeSpacing, w, h)
	case journal.Dotted:
		paintDotted(s, c, float64(c.LineSpacing), w, h)
	case journal.Grid:
		paintGrid(s, c, float64(c.LineSpacing), w, h)
	}
}

// paintRuled draws horizontal lines and the margin rule on top.
func paintRuled(s Surface, c journal.PaperConfig, spacing, w, h float64) {
	if spacing > 0 && c.LineWidth > 0 {
		for y := spacing; y < h; y += spacing {
			s.Line(RuleStart, y, w-EdgeInset, y, c.LineColor, c.LineWidth)
		}
	}

	s.Line(MarginX, 0, MarginX, h, MarginColor, MarginWidth)
}

func paintDotted(s Surface, c journal.PaperConfig, spacing, w, h float64) {
	if spacing <= 0 {
		return
	}

	for y := spacing; y < h; y += spacing {
		for x := float64(EdgeInset); x < w-EdgeInset; x += spacing {
			s.Dot(x, y, DotRadius, c.LineColor)
		}
	}
}

func paintGrid(s Surface, c journal.PaperConfig, spacing, w, h float64) {
	if spacing <= 0 || c.LineWidth <= 0 {
		return
	}

	for y := 0.0; y < h; y += spacing {
		s.Line(EdgeInset, y, w-EdgeInset, y, c.LineColor, c.LineWidth)
	}
	for x := float64(EdgeInset); x < w-EdgeInset; x += spacing {
		s.Line(x, 0, x, h, c.LineColor, c.LineWidth)
	}
}

// Paper paints the background for the given config on a new raster.
func Paper(c journal.PaperConfig, width, height int) *image.RGBA {
	r := NewRaster(width, height)
	Paint(r, c)
	return r.Image()
}

// WritePNG encodes the image as PNG.
func WritePNG(img image.Image, w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}
