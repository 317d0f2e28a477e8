package render

import (
	"github.com/akeil/journal"
)

// TextMetrics describes where text is placed on the paper so that it
// lines up with the background pattern.
type TextMetrics struct {
	LeftPadding  int `json:"leftPadding"`
	RightPadding int `json:"rightPadding"`
	TopPadding   int `json:"topPadding"`
	LineHeight   int `json:"lineHeight"`
}

// Metrics derives the text layout for the given config.
//
// On ruled paper the text starts right of the margin rule and each line
// box ends on a ruled line. Other patterns use the line spacing as
// line height.
func Metrics(c journal.PaperConfig) TextMetrics {
	m := TextMetrics{
		LeftPadding:  EdgeInset,
		RightPadding: EdgeInset,
		TopPadding:   c.LineSpacing,
		LineHeight:   c.LineSpacing,
	}

	if c.Pattern.Ruled() {
		m.LeftPadding = 70
	}
	if c.Pattern == journal.College {
		m.TopPadding = CollegeSpacing
		m.LineHeight = CollegeSpacing
	}

	return m
}
