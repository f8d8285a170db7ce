package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/satchel/internal/catalog"
	"github.com/five82/satchel/internal/listing"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// placeModal centers a bordered box over the screen.
func placeModal(theme Theme, width, height, boxWidth int, borderColor, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 2).
		Width(boxWidth).
		Render(content)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func modalTitle(styles Styles, title string, width int) string {
	return styles.Text.Bold(true).Render(title) + "\n" +
		styles.FaintText.Render(strings.Repeat("─", width)) + "\n\n"
}

// errorModal reports a failed fetch.
type errorModal struct {
	title   string
	content string
}

func newErrorModal(title, content string) *errorModal {
	return &errorModal{title: title, content: content}
}

func (m *errorModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, keys.Confirm) || key.Matches(k, keys.Escape) {
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m *errorModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.DangerText.Render(m.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(m.content))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("enter/esc to dismiss"))
	return placeModal(theme, width, height, 48, theme.Danger, b.String())
}

// itemModal shows one product's details.
type itemModal struct {
	item catalog.ProductListItem
}

func newItemModal(item catalog.ProductListItem) *itemModal {
	return &itemModal{item: item}
}

func (m *itemModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, keys.Confirm) || key.Matches(k, keys.Escape) {
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m *itemModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	p := m.item.Product

	rows := []struct{ label, value string }{
		{"ID", fmt.Sprintf("%d", m.item.ID)},
		{"Type", p.SourceType.Label()},
		{"Price", formatPrice(p.Price)},
		{"Publisher", ternary(p.Publisher == "", "-", p.Publisher)},
		{"Grade", ternary(p.Grade == "", "-", p.Grade)},
		{"Subject", ternary(p.Subject == "", "-", p.Subject)},
		{"Added", formatAge(p.CreatedAt)},
	}

	var b strings.Builder
	b.WriteString(modalTitle(styles, truncate(m.item.Title, 44), 44))
	for _, row := range rows {
		b.WriteString(styles.MutedText.Render(padRight(row.label, 11)))
		b.WriteString(styles.Text.Render(row.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("enter/esc to close"))
	return placeModal(theme, width, height, 52, theme.Accent, b.String())
}

// filterModal lets the user tick entries of the static checkbox groups.
// Opening and closing go through the controller so its ShowModal flag
// tracks the dialog.
type filterModal struct {
	vm       *listing.ViewModel
	groups   []catalog.FilterList
	groupIdx int
	cursor   int
}

func newFilterModal(vm *listing.ViewModel) *filterModal {
	m := &filterModal{vm: vm, groups: vm.CheckboxList()}
	if len(m.groups) > 0 {
		vm.OnShowModal(m.groups[0])
	}
	return m
}

func (m *filterModal) current() catalog.FilterList {
	return m.groups[m.groupIdx]
}

func (m *filterModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(m.groups) == 0 {
		return m, nil, len(m.groups) == 0
	}
	group := m.current()

	switch {
	case key.Matches(k, keys.Escape):
		m.vm.OnShowModal(group)
		return m, nil, true
	case key.Matches(k, keys.Tab):
		m.vm.OnShowModal(group)
		m.groupIdx = (m.groupIdx + 1) % len(m.groups)
		m.cursor = 0
		m.vm.OnShowModal(m.current())
	case key.Matches(k, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(k, keys.Down):
		if m.cursor < len(group.List)-1 {
			m.cursor++
		}
	case key.Matches(k, keys.Toggle), key.Matches(k, keys.Confirm):
		if m.cursor < len(group.List) {
			m.vm.ToggleCheck(group.ID, group.List[m.cursor])
		}
	}
	return m, nil, false
}

func (m *filterModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	if len(m.groups) == 0 {
		return ""
	}
	group := m.current()

	var b strings.Builder
	b.WriteString(modalTitle(styles, fmt.Sprintf("%s (%d/%d)", group.Title, m.groupIdx+1, len(m.groups)), 36))
	for i, label := range group.List {
		box := ternary(m.vm.Checked(group.ID, label), "[x] ", "[ ] ")
		line := box + label
		if i == m.cursor {
			b.WriteString(styles.Selected.Render(padRight(line, 36)))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("space toggle  tab next group  esc close"))
	return placeModal(theme, width, height, 44, theme.Accent, b.String())
}

// helpModal lists the key bindings. Any key closes it.
type helpModal struct{}

func (m helpModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	_, isKey := msg.(tea.KeyMsg)
	return m, nil, isKey
}

func (m helpModal) View(theme Theme, width, height int) string {
	return renderHelp(theme, DefaultKeyMap(), width, height)
}
