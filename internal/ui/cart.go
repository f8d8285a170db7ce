package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderCart renders the cart route. Checkout is not part of satchel, so the
// view only confirms navigation and explains how to return.
func (m Model) renderCart() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	contentHeight := m.height - 2

	body := lipgloss.JoinVertical(lipgloss.Center,
		bg.Render("Your cart is empty", styles.Text.Bold(true)),
		"",
		bg.Render("esc returns to the product list", styles.MutedText),
	)
	inner := lipgloss.Place(m.width-2, contentHeight-2, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.FocusBg)))
	return m.renderTitledBox("Cart", inner, m.width, contentHeight, true)
}
