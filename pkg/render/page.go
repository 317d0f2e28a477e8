package render

import (
	"image"
	"image/draw"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/akeil/journal"
)

// Page paints the paper for the draft's config with the draft's text on top.
func (c *Context) Page(d journal.Draft, width, height int) (*image.RGBA, error) {
	r := NewRaster(width, height)
	Paint(r, d.Config)

	err := c.drawText(r.Image(), d.Content, d.Config)
	if err != nil {
		return nil, err
	}

	return r.Image(), nil
}

// PagePNG renders the draft with Page and writes the result as PNG.
func (c *Context) PagePNG(d journal.Draft, w io.Writer) error {
	img, err := c.Page(d, DefaultWidth, DefaultHeight)
	if err != nil {
		return err
	}
	return WritePNG(img, w)
}

// drawText writes the text into the line boxes given by Metrics.
// Lines that do not fit on the page are dropped.
func (c *Context) drawText(dst draw.Image, text string, cfg journal.PaperConfig) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	m := Metrics(cfg)
	if m.LineHeight <= 0 {
		return nil
	}

	face, err := c.Face(cfg.Font, cfg.FontSize)
	if err != nil {
		return err
	}

	b := dst.Bounds()
	maxWidth := fixed.I(b.Dx() - m.LeftPadding - m.RightPadding)
	fm := face.Metrics()
	// center the glyphs vertically in the line box, like CSS half-leading
	offset := (fixed.I(m.LineHeight) + fm.Ascent - fm.Descent) / 2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(cfg.TextColor),
		Face: face,
	}

	for i, line := range wrap(face, text, maxWidth) {
		top := m.TopPadding + i*m.LineHeight
		if top+m.LineHeight > b.Dy() {
			break
		}
		d.Dot = fixed.Point26_6{
			X: fixed.I(b.Min.X + m.LeftPadding),
			Y: fixed.I(b.Min.Y+top) + offset,
		}
		d.DrawString(line)
	}

	return nil
}

// wrap breaks text into lines no wider than maxWidth.
// Explicit line breaks are kept, words wider than a line are not split.
func wrap(face font.Face, text string, maxWidth fixed.Int26_6) []string {
	lines := make([]string, 0)
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, w := range words[1:] {
			candidate := current + " " + w
			if font.MeasureString(face, candidate) > maxWidth {
				lines = append(lines, current)
				current = w
			} else {
				current = candidate
			}
		}
		lines = append(lines, current)
	}
	return lines
}
