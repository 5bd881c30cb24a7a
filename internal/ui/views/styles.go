package views

import (
	"github.com/charmbracelet/lipgloss"

	"formkit/internal/combobox"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
	Option    lipgloss.Style
	Highlight lipgloss.Style
	Committed lipgloss.Style
	Disabled  lipgloss.Style
	Empty     lipgloss.Style
	CheckMark lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label:     lipgloss.NewStyle().Bold(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Main:      lipgloss.NewStyle().Padding(0, 1),
		Option:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Committed: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Disabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		CheckMark: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
	}
}

// VariantColor returns the accent color for a styling variant
func VariantColor(v combobox.Variant) string {
	switch v {
	case combobox.VariantSecondary:
		return "245" // gray
	case combobox.VariantSuccess:
		return "78" // green
	case combobox.VariantDanger:
		return "203" // red
	case combobox.VariantWarning:
		return "214" // yellow
	default:
		return "33" // blue
	}
}

// Trigger returns the style of a combobox input line
func (s *Styles) Trigger(v combobox.Variant, focused, disabled bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(VariantColor(v)))
	if focused {
		style = style.Underline(true)
	}
	if disabled {
		style = s.Disabled
	}
	return style
}
