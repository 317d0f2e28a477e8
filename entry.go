package journal

import (
	"fmt"
	"strings"
	"time"
)

const ellipsis = "…"

// Entry is a single saved journal entry.
//
// The Config is a snapshot owned by the entry;
// later changes to the draft do not affect it.
type Entry struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Date    time.Time   `json:"date"`
	Config  PaperConfig `json:"config"`
}

// DefaultTitle is the title given to an entry saved without one,
// with n being the number of entries already in the journal.
func DefaultTitle(n int) string {
	return fmt.Sprintf("Entry %d", n+1)
}

// Preview returns the first n characters of the content.
// An ellipsis is added only if the content was shortened.
func (e Entry) Preview(n int) string {
	s := strings.TrimSpace(e.Content)
	r := []rune(s)
	if n < 0 || len(r) <= n {
		return s
	}
	return strings.TrimRightFunc(string(r[:n]), isSpace) + ellipsis
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Patch holds the replacement values for an entry update.
type Patch struct {
	Title   string
	Content string
	Date    time.Time
	Config  PaperConfig
}
