// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette of the board.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // Blue
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#E5E7EB"), // Light gray
		Muted:      lipgloss.Color("#6B7280"), // Medium gray
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#374151"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Logo is the application name in the header.
	Logo lipgloss.Style

	// Welcome is the greeting under the header.
	Welcome lipgloss.Style

	// Title is the board heading.
	Title lipgloss.Style

	// Card frames one conference.
	Card lipgloss.Style

	// SelectedCard frames the selected conference.
	SelectedCard lipgloss.Style

	// EntryTitle is the conference title.
	EntryTitle lipgloss.Style

	// Label prefixes a field value.
	Label lipgloss.Style

	// Normal is regular text.
	Normal lipgloss.Style

	// Link is the details link.
	Link lipgloss.Style

	// Muted is for less important text.
	Muted lipgloss.Style

	// Error is for error messages.
	Error lipgloss.Style

	// PageButton is an inactive pagination button.
	PageButton lipgloss.Style

	// ActivePage is the current page button.
	ActivePage lipgloss.Style

	// DisabledButton is a first/last button that cannot be used.
	DisabledButton lipgloss.Style

	// StatusBar is the line under the pagination row.
	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	button := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Foreground)

	return &Styles{
		theme: theme,

		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary).
			Padding(0, 2),

		Welcome: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		SelectedCard: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		EntryTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(theme.Secondary),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		PageButton: button,

		ActivePage: button.
			Bold(true).
			Background(theme.Primary),

		DisabledButton: button.
			Foreground(theme.Muted).
			Strikethrough(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
