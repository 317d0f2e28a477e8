package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/akeil/journal/internal/errors"
)

// Pattern selects the rule-drawing algorithm for the paper background.
type Pattern int

const (
	Blank Pattern = iota
	Lined
	Dotted
	Grid
	College
)

// Patterns lists all patterns in the order they are offered to the user.
var Patterns = []Pattern{Blank, Lined, Dotted, Grid, College}

// ParsePattern returns the pattern with the given name.
func ParsePattern(s string) (Pattern, error) {
	for _, p := range Patterns {
		if p.String() == s {
			return p, nil
		}
	}
	return Blank, errors.NewValidationError("invalid pattern %q", s)
}

func (p Pattern) Valid() bool {
	return p >= Blank && p <= College
}

func (p Pattern) String() string {
	switch p {
	case Blank:
		return "blank"
	case Lined:
		return "lined"
	case Dotted:
		return "dotted"
	case Grid:
		return "grid"
	case College:
		return "college"
	default:
		return "UNKNOWN"
	}
}

// DisplayName is the label shown in pattern selection lists.
func (p Pattern) DisplayName() string {
	switch p {
	case Blank:
		return "Blank"
	case Lined:
		return "Lined"
	case Dotted:
		return "Dotted"
	case Grid:
		return "Grid"
	case College:
		return "College Ruled"
	default:
		return ""
	}
}

// Ruled tells if the pattern has a left margin rule.
func (p Pattern) Ruled() bool {
	return p == Lined || p == College
}

func (p *Pattern) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	x, err := ParsePattern(s)
	if err != nil {
		return err
	}

	*p = x
	return nil
}

func (p Pattern) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid pattern %d", p)
	}

	buf := bytes.NewBufferString(`"`)
	buf.WriteString(p.String())
	buf.WriteString(`"`)

	return buf.Bytes(), nil
}

// Color is an opaque RGB color.
// It implements color.Color and serializes as "#rrggbb".
type Color struct {
	R, G, B uint8
}

// ParseColor reads a color in the "#rrggbb" or "#rgb" notation.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.NewValidationError("invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b}, nil
}

// MustParseColor is like ParseColor but panics on invalid input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

func (c Color) String() string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	x, err := ParseColor(s)
	if err != nil {
		return err
	}

	*c = x
	return nil
}

// Limits for the user adjustable paper settings.
const (
	MinFontSize    = 12
	MaxFontSize    = 32
	MinLineWidth   = 0.5
	MaxLineWidth   = 3.0
	LineWidthStep  = 0.5
	MinLineSpacing = 20
	MaxLineSpacing = 50
)

// PaperConfig holds the visual parameters for the paper background
// and the text written on it.
//
// PaperConfig is a value type; copies do not share state.
type PaperConfig struct {
	PaperColor Color   `json:"paperColor"`
	Pattern    Pattern `json:"pattern" validate:"pattern"`
	LineColor  Color   `json:"lineColor"`
	// LineWidth is the stroke width for ruled and grid lines.
	// Ignored for dotted and blank paper.
	LineWidth float64 `json:"lineWidth" validate:"gte=0.5,lte=3,halfstep"`
	// LineSpacing is the distance between lines or dots in pixels.
	// Ignored for college ruled and blank paper.
	LineSpacing int   `json:"lineSpacing" validate:"gte=20,lte=50"`
	Font        Font  `json:"font" validate:"font"`
	FontSize    int   `json:"fontSize" validate:"gte=12,lte=32"`
	TextColor   Color `json:"textColor"`
}

// DefaultConfig returns the paper settings a new journal starts with.
func DefaultConfig() PaperConfig {
	return PaperConfig{
		PaperColor:  MustParseColor("#fdfbf5"),
		Pattern:     Lined,
		LineColor:   MustParseColor("#d4c5b9"),
		LineWidth:   1,
		LineSpacing: 32,
		Font:        IndieFlower,
		FontSize:    18,
		TextColor:   MustParseColor("#2c2416"),
	}
}

// Validate checks all fields against the limits for user input.
func (c PaperConfig) Validate() error {
	return validateStruct(c)
}
