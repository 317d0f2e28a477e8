package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/journal"
)

func config(p journal.Pattern, spacing int) journal.PaperConfig {
	c := journal.DefaultConfig()
	c.Pattern = p
	c.LineSpacing = spacing
	return c
}

func TestBlankIsFlatFill(t *testing.T) {
	c := config(journal.Blank, 32)
	img := Paper(c, 120, 90)

	want := color.RGBAModel.Convert(c.PaperColor)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y) != want {
				t.Fatalf("unexpected pixel at %d,%d: %v", x, y, img.At(x, y))
			}
		}
	}

	rec := NewRecorder(120, 90)
	Paint(rec, c)
	assert.Len(t, rec.Ops, 1)
	assert.Equal(t, OpFill, rec.Ops[0].Kind)
}

func TestLinedStrokeCount(t *testing.T) {
	for _, spacing := range []int{20, 25, 32, 50} {
		rec := NewRecorder(DefaultWidth, DefaultHeight)
		Paint(rec, config(journal.Lined, spacing))

		lines := rec.Filter(OpLine)
		require.NotEmpty(t, lines)
		horizontal := lines[:len(lines)-1]
		assert.Len(t, horizontal, (DefaultHeight-1)/spacing, "spacing %d", spacing)

		for i, l := range horizontal {
			assert.Equal(t, float64((i+1)*spacing), l.Y0)
			assert.Equal(t, l.Y0, l.Y1)
			assert.Equal(t, float64(RuleStart), l.X0)
			assert.Equal(t, float64(DefaultWidth-EdgeInset), l.X1)
			assert.Equal(t, 1.0, l.Width)
		}

		// margin rule comes last, on top of the lines
		margin := lines[len(lines)-1]
		assert.Equal(t, float64(MarginX), margin.X0)
		assert.Equal(t, float64(MarginX), margin.X1)
		assert.Equal(t, 0.0, margin.Y0)
		assert.Equal(t, float64(DefaultHeight), margin.Y1)
		assert.Equal(t, float64(MarginWidth), margin.Width)
		assert.Equal(t, MarginColor, margin.Color)
	}
}

func TestLinedExactMultipleOfHeight(t *testing.T) {
	rec := NewRecorder(200, 100)
	Paint(rec, config(journal.Lined, 25))
	// 25, 50, 75 but not 100
	assert.Len(t, rec.Filter(OpLine), 3+1)
}

func TestCollegeIgnoresSpacing(t *testing.T) {
	a := NewRecorder(DefaultWidth, DefaultHeight)
	Paint(a, config(journal.College, 40))
	b := NewRecorder(DefaultWidth, DefaultHeight)
	Paint(b, config(journal.College, 20))

	assert.Equal(t, a.Ops, b.Ops)
	assert.Len(t, a.Filter(OpLine), (DefaultHeight-1)/CollegeSpacing+1)
	assert.Equal(t, float64(CollegeSpacing), a.Filter(OpLine)[0].Y0)
}

func TestDotted(t *testing.T) {
	rec := NewRecorder(200, 100)
	c := config(journal.Dotted, 30)
	c.LineWidth = 3
	Paint(rec, c)

	assert.Empty(t, rec.Filter(OpLine))
	dots := rec.Filter(OpDot)
	// y: 30, 60, 90; x: 40, 70, 100, 130
	require.Len(t, dots, 3*4)
	assert.Equal(t, 40.0, dots[0].X0)
	assert.Equal(t, 30.0, dots[0].Y0)
	assert.Equal(t, 130.0, dots[3].X0)
	assert.Equal(t, 90.0, dots[11].Y0)
	for _, d := range dots {
		assert.Equal(t, DotRadius, d.Radius)
		assert.Equal(t, c.LineColor, d.Color)
	}
}

func TestGridAxesAreIndependent(t *testing.T) {
	rec := NewRecorder(200, 100)
	Paint(rec, config(journal.Grid, 30))

	var horizontal, vertical []Op
	for _, l := range rec.Filter(OpLine) {
		if l.Y0 == l.Y1 {
			horizontal = append(horizontal, l)
		} else {
			vertical = append(vertical, l)
		}
	}

	// y: 0, 30, 60, 90
	require.Len(t, horizontal, 4)
	assert.Equal(t, 0.0, horizontal[0].Y0)
	assert.Equal(t, float64(EdgeInset), horizontal[0].X0)
	assert.Equal(t, 160.0, horizontal[0].X1)

	// x: 40, 70, 100, 130
	require.Len(t, vertical, 4)
	assert.Equal(t, float64(EdgeInset), vertical[0].X0)
	assert.Equal(t, 0.0, vertical[0].Y0)
	assert.Equal(t, 100.0, vertical[0].Y1)

	// no margin rule
	for _, l := range rec.Filter(OpLine) {
		assert.NotEqual(t, MarginColor, l.Color)
	}
}

func TestNonPositiveValuesDoNotLoop(t *testing.T) {
	for _, p := range journal.Patterns {
		for _, spacing := range []int{0, -10} {
			c := config(p, spacing)
			c.LineWidth = 0
			rec := NewRecorder(100, 100)
			Paint(rec, c)

			for _, op := range rec.Filter(OpLine) {
				assert.Equal(t, MarginColor, op.Color, "pattern %v", p)
			}
			assert.Empty(t, rec.Filter(OpDot))
		}
	}
}

func TestStaleValuesAreIgnored(t *testing.T) {
	a := NewRecorder(100, 100)
	b := NewRecorder(100, 100)
	ca := config(journal.Blank, 20)
	cb := config(journal.Blank, 45)
	cb.LineWidth = 3
	Paint(a, ca)
	Paint(b, cb)
	assert.Equal(t, a.Ops, b.Ops)

	// dotted paper ignores the line width
	a = NewRecorder(100, 100)
	b = NewRecorder(100, 100)
	ca.Pattern = journal.Dotted
	cb.Pattern = journal.Dotted
	cb.LineSpacing = ca.LineSpacing
	Paint(a, ca)
	Paint(b, cb)
	assert.Equal(t, a.Ops, b.Ops)
}

func TestRenderIsIdempotent(t *testing.T) {
	for _, p := range journal.Patterns {
		c := config(p, 28)
		one := Paper(c, 300, 400)
		two := Paper(c, 300, 400)
		assert.Equal(t, one.Pix, two.Pix, "pattern %v", p)
	}
}

func TestRasterPaintsMarginRule(t *testing.T) {
	img := Paper(config(journal.Lined, 32), 200, 200)

	r, g, _, _ := img.At(MarginX, 10).RGBA()
	assert.Greater(t, r, g, "margin rule should be red")

	// between two ruled lines the paper is untouched
	paper := color.RGBAModel.Convert(journal.DefaultConfig().PaperColor)
	assert.Equal(t, paper, img.At(100, 16))
	assert.NotEqual(t, paper, img.At(100, 32))
}

func TestRecorderReplay(t *testing.T) {
	c := config(journal.Grid, 25)
	rec := NewRecorder(150, 150)
	Paint(rec, c)

	r := NewRaster(150, 150)
	rec.Replay(r)

	assert.Equal(t, Paper(c, 150, 150).Pix, r.Image().Pix)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	err := WritePNG(Paper(journal.DefaultConfig(), 80, 60), &buf)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 80, 60), img.Bounds())
}
