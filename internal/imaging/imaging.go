package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail creates a copy of the given image, scaled to the given width.
// The aspect ratio is preserved.
func Thumbnail(i image.Image, width int) image.Image {
	b := i.Bounds()
	if width <= 0 || b.Dx() == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	size := image.Rect(0, 0, width, height)

	dst := image.NewRGBA(size)
	// bilinear keeps thin rules visible when scaling down
	draw.BiLinear.Scale(dst, size, i, b, draw.Src, nil)
	return dst
}
