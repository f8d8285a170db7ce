package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/satchel/internal/catalog"
	"github.com/five82/satchel/internal/listing"
)

// renderProducts renders the product list, with the filter drawer on the
// left when it is open.
func (m Model) renderProducts() string {
	contentHeight := m.height - 2 // header + command bar
	if contentHeight < 4 {
		return ""
	}

	listWidth := m.width
	var drawer string
	if m.vm.Status().ShowFilter && m.width > DrawerWidth+30 {
		listWidth = m.width - DrawerWidth
		drawer = m.renderTitledBox("Filters", m.renderDrawer(DrawerWidth-2), DrawerWidth, contentHeight, false)
	}

	list := m.renderTitledBox(m.listTitle(), m.renderListContent(listWidth-2, contentHeight-2), listWidth, contentHeight, true)
	if drawer == "" {
		return list
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, drawer, list)
}

func (m Model) listTitle() string {
	items := m.currentItems()
	return fmt.Sprintf("%s (%d)", m.category.Label(), len(items))
}

// renderListContent renders tabs, the search line, rows and the pagination
// footer inside the list pane.
func (m Model) renderListContent(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	lines := []string{m.renderTabs(width, bg, styles)}
	if m.searching {
		lines = append(lines, bg.FillLine(m.search.View(), width))
	} else if keyword := m.vm.Keyword(); keyword != "" {
		lines = append(lines, bg.Render("search: "+keyword, styles.AccentText))
	}

	footer := m.renderPageFooter(bg, styles)
	rowsHeight := height - len(lines) - 2 // column header + footer
	items := m.currentItems()

	if len(items) == 0 {
		msg := "No products"
		switch m.vm.SearchState() {
		case listing.SearchSearching:
			msg = m.spinner.View() + " Loading products..."
		case listing.SearchEmpty:
			msg = "No products match. Press enter to show all."
		}
		lines = append(lines, "", bg.Render(msg, styles.MutedText))
		for len(lines) < height-1 {
			lines = append(lines, "")
		}
		return strings.Join(append(lines, footer), "\n")
	}

	lines = append(lines, m.renderColumnHeader(width, bg, styles))

	start := 0
	if rowsHeight > 0 && m.selectedRow >= rowsHeight {
		start = m.selectedRow - rowsHeight + 1
	}
	end := min(start+max(rowsHeight, 0), len(items))
	for i := start; i < end; i++ {
		selected := i == m.selectedRow
		rowBg := ternary(selected, m.theme.SelectionBg, m.theme.FocusBg)
		content := m.formatProductRow(items[i], width, rowBg, selected)
		lines = append(lines, lipgloss.NewStyle().Background(lipgloss.Color(rowBg)).Width(width).Render(content))
	}
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	return strings.Join(append(lines, footer), "\n")
}

func (m Model) renderTabs(width int, bg BgStyle, styles Styles) string {
	counts := map[Category]int{
		CategoryAll:       len(m.vm.Items()),
		CategoryTextbooks: len(m.vm.TextBooks()),
		CategoryWorkbooks: len(m.vm.Workbooks()),
		CategoryHandouts:  len(m.vm.Handouts()),
	}
	tabs := make([]string, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		label := fmt.Sprintf("%s %d", c.Label(), counts[c])
		if c == m.category {
			tabs = append(tabs, styles.Selected.Render(" "+label+" "))
		} else {
			tabs = append(tabs, bg.Render(" "+label+" ", styles.MutedText))
		}
	}
	return bg.FillLine(strings.Join(tabs, bg.Space()), width)
}

type productColumns struct {
	id, kind, price, publisher, title int
}

func (m Model) columns(width int) productColumns {
	cols := productColumns{id: 5, kind: 11, price: 9}
	if width >= LayoutDetailWidth {
		cols.publisher = 20
	}
	cols.title = max(width-cols.id-cols.kind-cols.price-cols.publisher-4, 10)
	return cols
}

func (m Model) renderColumnHeader(width int, bg BgStyle, styles Styles) string {
	cols := m.columns(width)
	parts := []string{
		padRight("#", cols.id),
		padRight("Title", cols.title),
		padRight("Type", cols.kind),
	}
	if cols.publisher > 0 {
		parts = append(parts, padRight("Publisher", cols.publisher))
	}
	parts = append(parts, padLeft("Price", cols.price))
	return bg.Render(strings.Join(parts, " "), styles.FaintText.Bold(true))
}

// formatProductRow formats one row. Selected rows use SelectionText for
// every segment to keep contrast.
func (m Model) formatProductRow(item catalog.ProductListItem, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	cols := m.columns(width)
	p := item.Product

	var idStyle, titleStyle, priceStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle, titleStyle, priceStyle = selText, selText, selText
	} else {
		styles := m.theme.Styles()
		idStyle = styles.MutedText
		titleStyle = styles.Text
		priceStyle = styles.SuccessText
	}
	kindStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.categoryColor(p.SourceType)))
	if selected {
		kindStyle = kindStyle.Bold(true)
	}

	parts := []string{
		bg.Render(padRight(fmt.Sprintf("%d", item.ID), cols.id), idStyle),
		bg.Render(padRight(truncate(item.Title, cols.title), cols.title), titleStyle),
		bg.Render(padRight(p.SourceType.Label(), cols.kind), kindStyle),
	}
	if cols.publisher > 0 {
		parts = append(parts, bg.Render(padRight(truncate(p.Publisher, cols.publisher), cols.publisher), idStyle))
	}
	parts = append(parts, bg.Render(padLeft(formatPrice(p.Price), cols.price), priceStyle))
	return strings.Join(parts, bg.Space())
}

// categoryColor returns the theme color for a source type.
func (m Model) categoryColor(source catalog.SourceType) string {
	if color, ok := m.theme.CategoryColors[string(source)]; ok {
		return color
	}
	return m.theme.Muted
}

func (m Model) renderPageFooter(bg BgStyle, styles Styles) string {
	page := m.vm.Pagination()
	parts := []string{
		bg.Render(fmt.Sprintf("Page %d/%d", page.Index()+1, page.Count()), styles.Text),
		bg.Render(fmt.Sprintf("offset %d limit %d", page.Offset, page.Limit), styles.FaintText),
	}
	if page.HasMore() {
		parts = append(parts, bg.Render("m: load more", styles.AccentText))
	}
	if state := m.vm.SearchState(); state != listing.SearchIdle {
		parts = append(parts, bg.Render(string(state), styles.WarningText))
	}
	return bg.Join(parts, "  ")
}

// renderDrawer lists the server filter groups and the ticked checkboxes.
func (m Model) renderDrawer(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	var lines []string
	for _, group := range m.vm.Filters() {
		lines = append(lines, bg.Render(truncate(group.Title, width), styles.AccentText.Bold(true)))
		for _, value := range group.List {
			lines = append(lines, bg.Render("  "+truncate(value, width-2), styles.MutedText))
		}
		lines = append(lines, "")
	}

	var ticked []string
	for _, group := range m.vm.CheckboxList() {
		for _, label := range group.List {
			if m.vm.Checked(group.ID, label) {
				ticked = append(ticked, label)
			}
		}
	}
	lines = append(lines, bg.Render("Selected", styles.AccentText.Bold(true)))
	if len(ticked) == 0 {
		lines = append(lines, bg.Render("  none", styles.FaintText))
	}
	for _, label := range ticked {
		lines = append(lines, bg.Render("  [x] "+truncate(label, width-6), styles.Text))
	}
	return strings.Join(lines, "\n")
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := len([]rune(title))
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", max(innerWidth, 0)), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	padded := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		padded = append(padded,
			bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(padded, "\n") + "\n" + bottomBorder
}
