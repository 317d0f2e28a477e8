package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/akeil/journal"
)

func TestPreloadWithoutFontFiles(t *testing.T) {
	c := NewContext(t.TempDir())
	waitFor(t, c.Preload())

	for _, f := range journal.Fonts {
		assert.False(t, c.Loaded(f))
	}

	// falls back on the built-in font
	face, err := c.Face(journal.Caveat, 18)
	require.NoError(t, err)
	assert.NotNil(t, face)

	again, err := c.Face(journal.Caveat, 18)
	require.NoError(t, err)
	assert.Same(t, face, again)
}

func TestPreloadReadsFontFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fonts"), 0755))
	p := filepath.Join(dir, "fonts", string(journal.Kalam)+".ttf")
	require.NoError(t, os.WriteFile(p, gomono.TTF, 0644))

	c := NewContext(dir)
	before, err := c.Face(journal.Kalam, 20)
	require.NoError(t, err)

	waitFor(t, c.Preload())
	assert.True(t, c.Loaded(journal.Kalam))
	assert.False(t, c.Loaded(journal.Caveat))

	after, err := c.Face(journal.Kalam, 20)
	require.NoError(t, err)
	assert.NotSame(t, before, after, "fallback face should be replaced")
}

func TestPreloadInvalidFontFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fonts"), 0755))
	p := filepath.Join(dir, "fonts", string(journal.Caveat)+".ttf")
	require.NoError(t, os.WriteFile(p, []byte("not a font"), 0644))

	c := NewContext(dir)
	waitFor(t, c.Preload())
	assert.False(t, c.Loaded(journal.Caveat))
}

func TestPageDrawsText(t *testing.T) {
	c := NewContext(t.TempDir())
	d := journal.Draft{
		Content: "Dear diary,\ntoday was a good day.",
		Config:  journal.DefaultConfig(),
	}
	d.Config.TextColor = journal.MustParseColor("#000000")

	img, err := c.Page(d, 400, 300)
	require.NoError(t, err)

	paper := Paper(d.Config, 400, 300)
	m := Metrics(d.Config)
	changed := 0
	outside := 0
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			if img.At(x, y) == paper.At(x, y) {
				continue
			}
			changed++
			if x < m.LeftPadding || y < m.TopPadding {
				outside++
			}
		}
	}
	assert.Greater(t, changed, 0, "text should be drawn")
	assert.Equal(t, 0, outside, "text should stay inside the padding")

	var buf bytes.Buffer
	require.NoError(t, c.PagePNG(d, &buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, decoded.Bounds().Dx())
}

func TestPageWithoutText(t *testing.T) {
	c := NewContext(t.TempDir())
	cfg := journal.DefaultConfig()
	img, err := c.Page(journal.Draft{Content: "  ", Config: cfg}, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, Paper(cfg, 100, 100).Pix, img.Pix)
}

func TestWrap(t *testing.T) {
	c := NewContext(t.TempDir())
	face, err := c.Face(journal.IndieFlower, 16)
	require.NoError(t, err)

	text := "one two three four five six seven eight nine ten\n\nlast"
	width := measure(face, "one two three")
	lines := wrap(face, text, width)

	require.Greater(t, len(lines), 3)
	for _, l := range lines {
		assert.LessOrEqual(t, measure(face, l), width, l)
	}
	assert.Equal(t, "", lines[len(lines)-2])
	assert.Equal(t, "last", lines[len(lines)-1])
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for font preload")
	}
}

func measure(face font.Face, s string) fixed.Int26_6 {
	return font.MeasureString(face, s)
}
