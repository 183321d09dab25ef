package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	t.Run("nil theme uses default", func(t *testing.T) {
		s := NewStyles(nil)
		assert.Equal(t, DefaultTheme(), s.Theme())
	})

	t.Run("custom theme", func(t *testing.T) {
		theme := DefaultTheme()
		theme.Primary = "#000000"
		s := NewStyles(theme)
		assert.Equal(t, theme, s.Theme())
	})
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()
	assert.Contains(t, s.ActivePage.Render("3"), "3")
	assert.Contains(t, s.DisabledButton.Render("Первая"), "Первая")
	assert.Contains(t, s.Link.Render("Узнать подробности"), "Узнать подробности")
}
