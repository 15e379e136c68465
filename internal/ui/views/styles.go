package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Gutter        lipgloss.Style
	Ruler         lipgloss.Style
	Text          lipgloss.Style
	Track         lipgloss.Style
	Thumb         lipgloss.Style
	ThumbFocused  lipgloss.Style
	ThumbDragging lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Prompt        lipgloss.Style
	Dim           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Gutter:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Ruler:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Text:          lipgloss.NewStyle(),
		Track:         lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Thumb:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ThumbFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		ThumbDragging: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Dim:           lipgloss.NewStyle().Faint(true),
	}
}

// Glyphs used to draw the scroll track
const (
	ThumbGlyph           = "█"
	VerticalTrackGlyph   = "│"
	HorizontalTrackGlyph = "─"
)
