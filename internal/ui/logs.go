package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/five82/satchel/internal/logtail"
)

const logTailLines = 200

// logModal shows the end of the satchel log file.
type logModal struct {
	path   string
	lines  []logtail.Line
	err    error
	offset int // lines scrolled up from the bottom
}

func newLogModal(path string) *logModal {
	m := &logModal{path: path}
	m.reload()
	return m
}

func (m *logModal) reload() {
	m.lines, m.err = logtail.Tail(m.path, logTailLines)
	m.offset = 0
}

func (m *logModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch {
	case key.Matches(k, keys.Escape), key.Matches(k, keys.Logs), key.Matches(k, keys.Confirm):
		return m, nil, true
	case key.Matches(k, keys.Refresh):
		m.reload()
	case key.Matches(k, keys.Up):
		if m.offset < len(m.lines)-1 {
			m.offset++
		}
	case key.Matches(k, keys.Down):
		if m.offset > 0 {
			m.offset--
		}
	case key.Matches(k, keys.Bottom):
		m.offset = 0
	}
	return m, nil, false
}

func (m *logModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	boxWidth := max(40, width-8)
	textWidth := boxWidth - 6
	visible := max(3, height-12)

	var b strings.Builder
	b.WriteString(modalTitle(styles, "Log "+ternary(m.path == "", "(disabled)", m.path), textWidth))

	switch {
	case m.err != nil:
		b.WriteString(styles.DangerText.Render(m.err.Error()))
		b.WriteString("\n")
	case len(m.lines) == 0:
		b.WriteString(styles.MutedText.Render("No log entries"))
		b.WriteString("\n")
	default:
		end := len(m.lines) - m.offset
		start := max(0, end-visible)
		for _, line := range m.lines[start:end] {
			b.WriteString(logLineStyle(styles, line).Render(truncate(line.Text, textWidth)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("k/j scroll  G bottom  r reload  esc close"))
	return placeModal(theme, width, height, boxWidth, theme.Info, b.String())
}

func logLineStyle(styles Styles, line logtail.Line) lipgloss.Style {
	if !line.Parsed {
		return styles.FaintText
	}
	switch {
	case line.Level <= logrus.ErrorLevel:
		return styles.DangerText
	case line.Level == logrus.WarnLevel:
		return styles.WarningText
	case line.Level >= logrus.DebugLevel:
		return styles.MutedText
	default:
		return styles.Text
	}
}
