// Package tui is the interactive preview of a built catalog.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"themekit/internal/catalog"
	"themekit/internal/display"
	"themekit/internal/domain"
	"themekit/internal/generate"
	"themekit/internal/shortcut"
)

type listMode int

const (
	modeAliases listMode = iota
	modeTokens
)

// PreviewModel lists aliases or tokens on the left and details the
// selected entry on the right.
type PreviewModel struct {
	cat     *catalog.Catalog
	gen     *generate.Generator
	palette *display.Palette
	styles  *display.Styles
	keys    keyMap

	aliases []string
	tokens  []domain.Token

	mode     listMode
	cursor   int
	width    int
	height   int
	quitting bool
}

func NewPreviewModel(cat *catalog.Catalog) PreviewModel {
	palette := display.PaletteFrom(cat.Registry())

	return PreviewModel{
		cat:     cat,
		gen:     generate.New(cat.Registry(), generate.Options{}),
		palette: palette,
		styles:  display.NewStyles(palette),
		keys:    defaultKeyMap(),
		aliases: cat.Resolver().Aliases(),
		tokens:  cat.Registry().Tokens(),
		width:   100, // default width
		height:  30,  // default height
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0

		case key.Matches(msg, m.keys.Bottom):
			m.cursor = max(m.listLen()-1, 0)

		case key.Matches(msg, m.keys.Switch):
			if m.mode == modeAliases {
				m.mode = modeTokens
			} else {
				m.mode = modeAliases
			}
			m.cursor = 0
		}
	}

	return m, nil
}

func (m PreviewModel) listLen() int {
	if m.mode == modeTokens {
		return len(m.tokens)
	}
	return len(m.aliases)
}

func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}

	// ensure minimum dimensions
	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	leftWidth := m.width / 3
	if leftWidth < 30 {
		leftWidth = 30
	}
	rightWidth := m.width - leftWidth - 4
	if rightWidth < 30 {
		rightWidth = 30
	}

	box := lipgloss.NewStyle().
		Height(m.height - 6).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.palette.BorderColor)).
		Padding(1)

	left := box.Width(leftWidth).Render(m.renderList(leftWidth))
	right := box.Width(rightWidth).Render(m.renderDetail())
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := m.styles.TUITitle.Render("themekit preview")
	source := m.styles.Subtitle.Render(m.cat.Source())
	help := m.styles.TUIHelp.Render(m.keys.help())

	return fmt.Sprintf("%s %s\n\n%s\n\n%s", header, source, main, help)
}

func (m PreviewModel) renderList(width int) string {
	var b strings.Builder

	title := fmt.Sprintf("Aliases (%d)", len(m.aliases))
	names := m.aliases
	if m.mode == modeTokens {
		title = fmt.Sprintf("Tokens (%d)", len(m.tokens))
		names = make([]string, len(m.tokens))
		for i, t := range m.tokens {
			names[i] = t.Ref()
		}
	}

	b.WriteString(m.styles.DetailLabel.Render(title))
	b.WriteString("\n\n")

	// keep the cursor in view
	visible := max(m.height-12, 1)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(names))

	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(m.styles.SelectedItem.Width(width - 4).Render("▶ " + names[i]))
		} else {
			b.WriteString(m.styles.ListItem.Render(names[i]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m PreviewModel) renderDetail() string {
	if m.listLen() == 0 {
		return m.styles.Muted.Render("nothing declared")
	}
	if m.mode == modeTokens {
		return m.renderToken(m.tokens[m.cursor])
	}
	return m.renderAlias(m.aliases[m.cursor])
}

func (m PreviewModel) renderAlias(alias string) string {
	var b strings.Builder

	rule, _ := m.cat.Resolver().Rule(alias)
	utilities, err := m.cat.Expand(alias)

	b.WriteString(m.styles.DetailLabel.Render("Alias") + "\n")
	b.WriteString(m.styles.DetailValue.Render(alias) + "\n\n")

	b.WriteString(m.styles.DetailLabel.Render("Declared") + "\n")
	for _, entry := range rule.Expansion {
		b.WriteString(m.styles.Code.Render(entry) + "\n")
	}
	b.WriteString("\n")

	if err != nil {
		b.WriteString(m.styles.Error.Render(err.Error()) + "\n")
		return b.String()
	}

	b.WriteString(m.styles.DetailLabel.Render("Expands to") + "\n")
	b.WriteString(m.styles.DetailValue.Render(strings.Join(utilities, " ")) + "\n\n")

	res := m.gen.GenerateShortcuts([]shortcut.Expansion{{Alias: alias, Utilities: utilities}})
	b.WriteString(m.styles.DetailLabel.Render("CSS") + "\n")
	if css := m.gen.Render(res); css != "" {
		b.WriteString(m.styles.Code.Render(strings.TrimRight(css, "\n")) + "\n")
	}
	for _, skipped := range res.Skipped {
		b.WriteString(m.styles.Warning.Render("skipped "+skipped) + "\n")
	}

	refs := referencedTokens(rule)
	if len(refs) > 0 {
		b.WriteString("\n" + m.styles.DetailLabel.Render("Tokens") + "\n")
		for _, ref := range refs {
			value, err := m.cat.Registry().Lookup(ref)
			if err != nil {
				continue
			}
			b.WriteString(fmt.Sprintf("%s %s\n", display.Swatch(value), ref))
		}
	}

	return b.String()
}

func (m PreviewModel) renderToken(token domain.Token) string {
	var b strings.Builder

	b.WriteString(m.styles.DetailLabel.Render("Token") + "\n")
	b.WriteString(m.styles.DetailValue.Render("{"+token.Ref()+"}") + "\n\n")

	b.WriteString(m.styles.DetailLabel.Render("Value") + "\n")
	b.WriteString(display.Swatch(token.Value) + "\n")
	if name, distance, err := display.NearestName(token.Value); err == nil {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("closest named color: %s (ΔE %.1f)", name, distance)) + "\n")
	}

	var users []string
	for _, alias := range m.aliases {
		rule, _ := m.cat.Resolver().Rule(alias)
		for _, ref := range referencedTokens(rule) {
			if ref == token.Ref() {
				users = append(users, alias)
				break
			}
		}
	}

	b.WriteString("\n" + m.styles.DetailLabel.Render("Used by") + "\n")
	if len(users) == 0 {
		b.WriteString(m.styles.Muted.Render("no alias") + "\n")
	}
	for _, alias := range users {
		b.WriteString(m.styles.DetailValue.Render(alias) + "\n")
	}

	return b.String()
}

// distinct references in declaration order
func referencedTokens(rule domain.ShortcutRule) []string {
	seen := make(map[string]bool)
	var refs []string
	for _, entry := range rule.Expansion {
		for _, ref := range shortcut.References(entry) {
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
	}
	return refs
}
