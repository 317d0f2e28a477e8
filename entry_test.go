package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	e := Entry{Content: "short"}
	assert.Equal(t, "short", e.Preview(80))

	e.Content = strings.Repeat("a", 80)
	assert.Equal(t, e.Content, e.Preview(80))

	e.Content = strings.Repeat("a", 81)
	assert.Equal(t, strings.Repeat("a", 80)+"…", e.Preview(80))

	// multi byte characters are not split
	e.Content = "äöü äöü"
	assert.Equal(t, "äöü…", e.Preview(4))
}

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "Entry 1", DefaultTitle(0))
	assert.Equal(t, "Entry 4", DefaultTitle(3))
}
