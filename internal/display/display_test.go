package display

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMessagesEndWithNewline(t *testing.T) {
	// Color codes would make the assertions environment-dependent.
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var b strings.Builder
	Successf(&b, "%d paths selected", 3)
	assert.Equal(t, "3 paths selected\n", b.String())

	b.Reset()
	Warnf(&b, "0 paths selected")
	assert.Equal(t, "0 paths selected\n", b.String())

	b.Reset()
	Listf(&b, "- %s", "alpha")
	assert.Equal(t, "- alpha\n", b.String())
}
