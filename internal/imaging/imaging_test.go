package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 1000))
	fill := color.RGBA{10, 20, 30, 255}
	draw.Draw(src, src.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	th := Thumbnail(src, 160)
	assert.Equal(t, 160, th.Bounds().Dx())
	assert.Equal(t, 200, th.Bounds().Dy())
	r, g, b, _ := th.At(80, 100).RGBA()
	assert.InDelta(t, 10, r>>8, 1)
	assert.InDelta(t, 20, g>>8, 1)
	assert.InDelta(t, 30, b>>8, 1)

	assert.True(t, Thumbnail(src, 0).Bounds().Empty())
}
