package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var helpSectionTitles = []string{"Navigation", "Pages", "Filtering", "Actions", "General"}

// renderHelp renders the help overlay from the key map.
func renderHelp(theme Theme, keys keyMap, width, height int) string {
	styles := theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Width(12)

	var b strings.Builder
	b.WriteString(modalTitle(styles, "Keyboard Shortcuts", 30))

	groups := keys.FullHelp()
	for i, group := range groups {
		title := "More"
		if i < len(helpSectionTitles) {
			title = helpSectionTitles[i]
		}
		b.WriteString(styles.AccentText.Bold(true).Render(title))
		b.WriteString("\n")
		for _, binding := range group {
			help := binding.Help()
			b.WriteString(keyStyle.Render(help.Key))
			b.WriteString(styles.Text.Render(help.Desc))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	return placeModal(theme, width, height, 40, theme.Accent, b.String())
}
