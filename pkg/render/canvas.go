package render

import (
	"image"
	"io"

	"github.com/akeil/journal"
	"github.com/akeil/journal/internal/logging"
)

// Canvas is the paper behind the editor.
//
// It implements journal.ConfigObserver and repaints itself in full
// whenever the config changes.
type Canvas struct {
	raster   *Raster
	config   journal.PaperConfig
	metrics  TextMetrics
	repaints int
}

// NewCanvas creates a blank canvas with the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		raster: NewRaster(width, height),
	}
}

func (c *Canvas) ConfigChanged(cfg journal.PaperConfig) {
	Paint(c.raster, cfg)
	c.config = cfg
	c.metrics = Metrics(cfg)
	c.repaints++
	logging.Debug("Repainted %v paper (%d)", cfg.Pattern, c.repaints)
}

// Image returns the painted paper.
func (c *Canvas) Image() image.Image {
	return c.raster.Image()
}

// Metrics returns the text layout for the current paper.
func (c *Canvas) Metrics() TextMetrics {
	return c.metrics
}

// Config returns the config the canvas was last painted with.
func (c *Canvas) Config() journal.PaperConfig {
	return c.config
}

// Repaints is the number of times the canvas was painted.
func (c *Canvas) Repaints() int {
	return c.repaints
}

// PNG writes the current paper as PNG.
func (c *Canvas) PNG(w io.Writer) error {
	return WritePNG(c.raster.Image(), w)
}
