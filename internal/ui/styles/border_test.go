package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTitledBox_Dimensions(t *testing.T) {
	out := RenderTitledBox("hello", "Playground", 30, 6, false)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	for i, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line), "line %d width", i)
	}
}

func TestRenderTitledBox_TitleInTopBorder(t *testing.T) {
	out := RenderTitledBox("x", "Git Playground", 40, 4, true)
	top := strings.Split(out, "\n")[0]
	assert.Contains(t, ansi.Strip(top), " Git Playground ")
	assert.True(t, strings.HasPrefix(ansi.Strip(top), borderTopLeft))
	assert.True(t, strings.HasSuffix(ansi.Strip(top), borderTopRight))
}

func TestRenderTitledBox_TitleWiderThanBox_FallsBackToPlainBorder(t *testing.T) {
	out := RenderTitledBox("x", "An Extremely Long Title", 10, 3, false)
	top := ansi.Strip(strings.Split(out, "\n")[0])
	assert.NotContains(t, top, "Extremely")
	assert.Equal(t, 10, lipgloss.Width(top))
}
