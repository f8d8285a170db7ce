package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// initSearchInput prepares the keyword input, seeded with the current keyword.
func (m *Model) initSearchInput() {
	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.Prompt = "/"
	ti.CharLimit = 80
	ti.SetValue(m.vm.Keyword())
	m.search = ti
}

// startSearch focuses the keyword input.
func (m *Model) startSearch() tea.Cmd {
	m.searching = true
	m.search.SetValue(m.vm.Keyword())
	m.search.CursorEnd()
	return m.search.Focus()
}

// handleSearchInput handles keys while the keyword input is focused.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.vm.SetKeyword(m.search.Value())
		m.searching = false
		m.search.Blur()
		m.selectedRow = 0
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.vm.Keyword())
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}
