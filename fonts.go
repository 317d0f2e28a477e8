package journal

import (
	"fmt"

	"github.com/akeil/journal/internal/errors"
)

// Font names one of the display typefaces offered for journal text.
type Font string

const (
	IndieFlower      Font = "Indie Flower"
	Caveat           Font = "Caveat"
	PermanentMarker  Font = "Permanent Marker"
	ShadowsIntoLight Font = "Shadows Into Light"
	Kalam            Font = "Kalam"
	PatrickHand      Font = "Patrick Hand"
)

// Fonts is the fixed set of font families requested at startup.
var Fonts = []Font{
	IndieFlower,
	Caveat,
	PermanentMarker,
	ShadowsIntoLight,
	Kalam,
	PatrickHand,
}

// StylesheetURL loads all Fonts from the Google Fonts service.
const StylesheetURL = "https://fonts.googleapis.com/css2?family=Indie+Flower&family=Caveat:wght@400;700&family=Permanent+Marker&family=Shadows+Into+Light&family=Kalam:wght@300;400;700&family=Patrick+Hand&display=swap"

// ParseFont returns the font family with the given name.
func ParseFont(s string) (Font, error) {
	f := Font(s)
	if !f.Valid() {
		return "", errors.NewValidationError("unsupported font %q", s)
	}
	return f, nil
}

func (f Font) Valid() bool {
	for _, x := range Fonts {
		if x == f {
			return true
		}
	}
	return false
}

// CSS returns the value for a CSS font-family declaration,
// with a cursive fallback.
func (f Font) CSS() string {
	return fmt.Sprintf("'%s', cursive", f)
}
