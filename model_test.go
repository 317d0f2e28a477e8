package journal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/journal/internal/errors"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#fdfbf5")
	require.NoError(t, err)
	assert.Equal(t, Color{0xfd, 0xfb, 0xf5}, c)
	assert.Equal(t, "#fdfbf5", c.String())

	c, err = ParseColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, Color{0xff, 0, 0}, c)

	_, err = ParseColor("red")
	assert.True(t, errors.IsValidationError(err))

	r, g, b, a := Color{0xff, 0x6b, 0x6b}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x6b6b), g)
	assert.Equal(t, uint32(0x6b6b), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestPatternNames(t *testing.T) {
	for _, p := range Patterns {
		x, err := ParsePattern(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, x)
	}

	_, err := ParsePattern("hexagon")
	assert.Error(t, err)

	assert.True(t, Lined.Ruled())
	assert.True(t, College.Ruled())
	assert.False(t, Grid.Ruled())
	assert.Equal(t, "College Ruled", College.DisplayName())
}

func TestConfigJSON(t *testing.T) {
	data, err := json.Marshal(DefaultConfig())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"pattern":"lined"`)
	assert.Contains(t, s, `"paperColor":"#fdfbf5"`)
	assert.Contains(t, s, `"font":"Indie Flower"`)

	var c PaperConfig
	err = json.Unmarshal([]byte(`{"pattern":"hexagon"}`), &c)
	assert.Error(t, err)

	_, err = json.Marshal(PaperConfig{Pattern: Pattern(42)})
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())

	c.FontSize = 40
	c.LineWidth = 1.25
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "fontSize")
	assert.Contains(t, err.Error(), "lineWidth")

	c = DefaultConfig()
	c.Font = "Comic Sans"
	assert.Error(t, c.Validate())
}

func TestFonts(t *testing.T) {
	assert.Len(t, Fonts, 6)
	for _, f := range Fonts {
		assert.True(t, f.Valid())
	}
	assert.Equal(t, "'Kalam', cursive", Kalam.CSS())

	_, err := ParseFont("Helvetica")
	assert.True(t, errors.IsValidationError(err))
}
