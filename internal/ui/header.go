package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)
	compact := m.width < LayoutCompactWidth

	status := m.vm.Status()
	page := m.vm.Pagination()

	parts := []string{bg.Render("satchel", styles.Logo)}

	if !compact && m.config != nil {
		parts = append(parts,
			bg.Render("api", styles.FaintText)+bg.Space()+
				bg.Render(truncate(m.config.APIBase, 32), styles.MutedText))
	}

	parts = append(parts,
		bg.Render("Products:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", len(m.vm.Items()), page.Total), styles.Text))

	if key := m.vm.SortKey(); key != "" {
		parts = append(parts,
			bg.Render("Sort:", styles.MutedText)+bg.Space()+
				bg.Render(string(key), styles.AccentText))
	}

	if activity := activityLabel(m.busy, status.Loading, status.Refreshing, status.AddingItems); activity != "" {
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.WarningText)+bg.Space()+
				bg.Render(activity, styles.WarningText.Bold(true)))
	}

	if n := len(status.Errors); n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d error%s", n, ternary(n == 1, "", "s")), styles.DangerText))
	}

	if !m.lastUpdated.IsZero() {
		parts = append(parts, bg.Render(m.lastUpdated.Format("15:04:05"), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// activityLabel names the in-flight work, if any.
func activityLabel(busy int, loading, refreshing, adding bool) string {
	switch {
	case refreshing:
		return "Refreshing"
	case adding:
		return "Loading more"
	case loading:
		return "Loading"
	case busy > 0:
		return "Working"
	}
	return ""
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	if m.router.Current() != "" {
		commands = []cmd{
			{"esc", "Back"},
			{"T", "Theme"},
			{"?", "More"},
		}
	} else {
		commands = []cmd{
			{"tab", m.category.Label()},
			{"[/]", "Page"},
			{"m", "More"},
			{"r", "Refresh"},
			{"/", "Search"},
			{"s", "Sort"},
			{"f", "Filters"},
			{"c", "Cart"},
			{"?", "Help"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if keyword := m.vm.Keyword(); keyword != "" && m.router.Current() == "" {
		segments = append(segments, bg.Render("/"+truncate(keyword, 18), styles.AccentText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Padding(0, 1).
		Render(strings.Join(segments, sep))
}
