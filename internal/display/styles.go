package display

import (
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Muted     lipgloss.Style
	Separator lipgloss.Style

	// tui
	TUITitle        lipgloss.Style
	TUIHelp         lipgloss.Style
	ListItem        lipgloss.Style
	SelectedItem    lipgloss.Style
	DetailContainer lipgloss.Style
	DetailLabel     lipgloss.Style
	DetailValue     lipgloss.Style
	Code            lipgloss.Style
}

// creates all styles based on the given palette
func NewStyles(p *Palette) *Styles {
	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Secondary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextSecondary)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.HeaderFg)).
			Background(lipgloss.Color(p.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextMuted)),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Separator)),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.HeaderFg)).
			Background(lipgloss.Color(p.Primary)).
			Padding(0, 1),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.HelpText)),

		ListItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextPrimary)).
			PaddingLeft(2),

		SelectedItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.SelectedFg)).
			Background(lipgloss.Color(p.SelectedBg)).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1),

		DetailContainer: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderColor)).
			Padding(1, 2),

		DetailLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Secondary)).
			Bold(true),

		DetailValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextPrimary)),

		Code: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),
	}
}
