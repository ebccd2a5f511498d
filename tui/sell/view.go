package sell

import (
	"fmt"
	"strings"

	"github.com/MAPO-UPTC/mapo-cli/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 3
	footerHeight = 4
	cartWidth    = 44
)

// View renders the sell screen: catalog on the left, cart on the right,
// notifications and help in the footer.
func (m *Model) View() string {
	if m.width < 60 || m.height < 14 {
		return "Terminal too small. Please resize."
	}

	t := theme.DefaultTheme

	if m.showHelp {
		return m.helpView(t)
	}
	if m.focus == focusCustomer {
		return m.customerView(t)
	}

	header := m.headerView(t)
	catalog := m.catalogView(t)
	cart := m.cartView(t)
	body := lipgloss.JoinHorizontal(lipgloss.Top, catalog, cart)
	footer := m.footerView(t)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) headerView(t *theme.Theme) string {
	title := "MAPO · PUNTO DE VENTA"
	if user := m.store.User(); user != nil {
		title = fmt.Sprintf("MAPO · PUNTO DE VENTA · %s", user.Name)
	}
	if m.loading {
		title += " " + m.spin.View()
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Colors.Orange).
		Width(m.width - 2).
		Align(lipgloss.Center).
		Bold(true).
		Render(title)
}

func (m *Model) catalogWidth() int {
	return m.width - cartWidth - 4
}

func (m *Model) catalogHeight() int {
	// borders, filter line, table header
	return m.height - headerHeight - footerHeight - 5
}

func (m *Model) catalogView(t *theme.Theme) string {
	var b strings.Builder

	filterLine := m.filterInput.View()
	if m.focus != focusFilter && m.filterInput.Value() == "" {
		filterLine = t.Muted.Render("Press / to filter")
	}
	b.WriteString(filterLine)
	b.WriteString("\n")

	nameW := m.catalogWidth() - 34
	if nameW < 16 {
		nameW = 16
	}
	b.WriteString(t.TableHeader.Render(fmt.Sprintf("%-*s %12s %10s %5s", nameW, "PRODUCTO", "PRECIO", "STOCK", "")))
	b.WriteString("\n")

	visible := m.catalogHeight()
	if visible < 1 {
		visible = 1
	}
	end := m.scrollOffset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.scrollOffset; i < end; i++ {
		r := m.rows[i]
		label := r.product.Name
		if r.pres.PresentationName != "" {
			label = fmt.Sprintf("%s · %s", r.product.Name, r.pres.PresentationName)
		}
		if len(label) > nameW {
			label = label[:nameW-1] + "…"
		}
		tag := ""
		if r.pres.IsBulk() {
			tag = "granel"
		}
		line := fmt.Sprintf("%-*s %12s %10s %5s",
			nameW, label, m.store.FormatMoney(r.pres.Price), r.pres.AvailableStock().String(), tag)

		switch {
		case i == m.cursor && m.focus != focusCart:
			line = t.Selected.Render(line)
		case i == m.cursor:
			line = t.Muted.Underline(true).Render(line)
		case r.pres.AvailableStock().IsZero():
			line = t.Muted.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.rows) == 0 && !m.loading {
		b.WriteString(t.Muted.Render("No products match."))
	}

	if m.focus == focusQuantity {
		b.WriteString("\n")
		b.WriteString(t.Highlight.Render("Cantidad: "))
		b.WriteString(m.qtyInput.View())
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Colors.Border).
		Width(m.catalogWidth()).
		Height(m.height-headerHeight-footerHeight-2).
		Padding(0, 1).
		Render(b.String())
}

func (m *Model) cartView(t *theme.Theme) string {
	var b strings.Builder

	b.WriteString(t.Bold.Render("CARRITO"))
	b.WriteString("\n")
	if customer := m.store.Customer(); customer != nil {
		b.WriteString(t.Muted.Render("Cliente: " + customer.Name))
	} else {
		b.WriteString(t.Warning.Render("Sin cliente (u)"))
	}
	b.WriteString("\n\n")

	items := m.store.CartItems()
	for i, item := range items {
		name := item.Presentation.ProductName
		if name == "" {
			name = item.Presentation.PresentationName
		}
		if len(name) > cartWidth-22 {
			name = name[:cartWidth-23] + "…"
		}
		line := fmt.Sprintf("%-*s x%-6s %10s",
			cartWidth-22, name, item.Quantity.String(), m.store.FormatMoney(item.LineTotal()))
		if m.focus == focusCart && i == m.cartCursor {
			line = t.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(items) == 0 {
		b.WriteString(t.Muted.Render("vacío"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Highlight.Render(fmt.Sprintf("TOTAL %s", m.store.FormatMoney(m.store.CartTotal()))))

	border := t.Colors.Border
	if m.focus == focusCart {
		border = t.Colors.Orange
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cartWidth).
		Height(m.height-headerHeight-footerHeight-2).
		Padding(0, 1).
		Render(b.String())
}

func (m *Model) footerView(t *theme.Theme) string {
	var lines []string

	notifications := m.store.Notifications()
	shown := 0
	for i := len(notifications) - 1; i >= 0 && shown < 2; i-- {
		n := notifications[i]
		text := n.Title
		if n.Message != "" {
			text = fmt.Sprintf("%s: %s", n.Title, n.Message)
		}
		lines = append(lines, theme.RenderStatus(string(n.Type), text))
		shown++
	}

	var pairs []string
	for _, binding := range m.keys.ShortHelp() {
		pairs = append(pairs, fmt.Sprintf("%s %s",
			t.Highlight.Render(binding.Help().Key), t.Muted.Render(binding.Help().Desc)))
	}
	lines = append(lines, strings.Join(pairs, t.Muted.Render(" • ")))

	return lipgloss.NewStyle().
		Width(m.width-2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) customerView(t *theme.Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Elegir cliente"))
	b.WriteString("\n")

	for i, c := range m.customers {
		line := c.Name
		if c.Document != "" {
			line = fmt.Sprintf("%s (%s)", c.Name, c.Document)
		}
		if i == m.customerCursor {
			line = t.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.customers) == 0 {
		b.WriteString(t.Muted.Render("No hay clientes registrados."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Muted.Render("enter selecciona · esc cancela"))

	box := t.DetailsBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) helpView(t *theme.Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Atajos"))
	b.WriteString("\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(fmt.Sprintf("%-14s %s\n",
				t.Highlight.Render(binding.Help().Key), binding.Help().Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(t.Muted.Render("Press any key to close"))

	box := t.Box.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
