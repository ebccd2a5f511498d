package sell

import (
	"github.com/MAPO-UPTC/mapo-cli/store"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case productsLoadedMsg:
		m.loading = false
		m.rebuildRows()
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("product load failed")
		}
		return m, nil

	case customersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, nil
		}
		m.customers = msg.customers
		m.customerCursor = 0
		m.focus = focusCustomer
		return m, nil

	case saleCreatedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("sale failed")
		}
		// Success and failure both surface through store notifications.
		return m, nil

	case storeEventMsg:
		if msg.ev.Kind == store.EventProducts {
			m.rebuildRows()
		}
		return m, m.waitForEvent()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.focus {
	case focusFilter:
		return m.handleFilterKey(msg)
	case focusQuantity:
		return m.handleQuantityKey(msg)
	case focusCart:
		return m.handleCartKey(msg)
	case focusCustomer:
		return m.handleCustomerKey(msg)
	}
	return m.handleCatalogKey(msg)
}

func (m *Model) handleCustomerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.focus = focusCatalog

	case msg.Type == tea.KeyEnter:
		if len(m.customers) > 0 && m.customerCursor < len(m.customers) {
			selected := m.customers[m.customerCursor]
			m.store.SetCustomer(&selected)
		}
		m.focus = focusCatalog

	case key.Matches(msg, m.keys.Up):
		if m.customerCursor > 0 {
			m.customerCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.customerCursor < len(m.customers)-1 {
			m.customerCursor++
		}

	case key.Matches(msg, m.keys.Quit):
		m.focus = focusCatalog
	}

	return m, nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.focus = focusCatalog
		m.rebuildRows()
		return m, nil
	case tea.KeyEnter:
		m.filterInput.Blur()
		m.focus = focusCatalog
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.rebuildRows()
	m.cursor = 0
	m.scrollOffset = 0
	return m, cmd
}

func (m *Model) handleQuantityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.qtyInput.Blur()
		m.focus = focusCatalog
		return m, nil
	case tea.KeyEnter:
		m.qtyInput.Blur()
		m.focus = focusCatalog

		sel, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		qty, err := decimal.NewFromString(m.qtyInput.Value())
		if err != nil {
			m.store.AddNotification(store.NotificationWarning, "Cantidad inválida", m.qtyInput.Value())
			return m, nil
		}
		m.store.AddToCart(sel.pres, qty, sel.pres.Price)
		return m, nil
	}

	var cmd tea.Cmd
	m.qtyInput, cmd = m.qtyInput.Update(msg)
	return m, cmd
}

func (m *Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.store.CartItems()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cart):
		m.focus = focusCatalog

	case key.Matches(msg, m.keys.Up):
		if m.cartCursor > 0 {
			m.cartCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cartCursor < len(items)-1 {
			m.cartCursor++
		}

	case key.Matches(msg, m.keys.Remove):
		if len(items) > 0 && m.cartCursor < len(items) {
			m.store.RemoveFromCart(items[m.cartCursor].Presentation.ID)
			if m.cartCursor > 0 {
				m.cartCursor--
			}
		}

	case key.Matches(msg, m.keys.Clear):
		m.store.ClearCart()
		m.cartCursor = 0
		m.focus = focusCatalog

	case key.Matches(msg, m.keys.Checkout):
		return m.startCheckout()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}

	return m, nil
}

func (m *Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Filter):
		m.focus = focusFilter
		m.filterInput.Focus()
		m.lastKeyWasG = false
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Add):
		sel, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		m.focus = focusQuantity
		if sel.pres.IsBulk() {
			m.qtyInput.SetValue("")
		} else {
			m.qtyInput.SetValue("1")
		}
		m.qtyInput.Focus()
		m.lastKeyWasG = false
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Cart):
		m.focus = focusCart
		m.cartCursor = 0
		m.lastKeyWasG = false

	case key.Matches(msg, m.keys.Customer):
		m.loading = true
		m.lastKeyWasG = false
		return m, tea.Batch(m.spin.Tick, m.loadCustomers())

	case key.Matches(msg, m.keys.Checkout):
		return m.startCheckout()

	case key.Matches(msg, m.keys.Clear):
		m.store.ClearCart()
		m.lastKeyWasG = false

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.lastKeyWasG = false
		return m, tea.Batch(m.spin.Tick, m.loadProducts())

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.lastKeyWasG = false

	case key.Matches(msg, m.keys.Top):
		if m.lastKeyWasG {
			m.cursor = 0
			m.ensureCursorVisible()
			m.lastKeyWasG = false
		} else {
			m.lastKeyWasG = true
		}

	case key.Matches(msg, m.keys.Bottom):
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
			m.ensureCursorVisible()
		}
		m.lastKeyWasG = false

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
		m.lastKeyWasG = false

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
		m.lastKeyWasG = false

	default:
		m.lastKeyWasG = false
	}

	return m, nil
}

func (m *Model) startCheckout() (tea.Model, tea.Cmd) {
	if len(m.store.CartItems()) == 0 {
		m.store.AddNotification(store.NotificationWarning, "Carrito vacío", "Agrega productos antes de cobrar")
		return m, nil
	}
	if m.store.Customer() == nil {
		m.store.AddNotification(store.NotificationWarning, "Sin cliente", "Presiona 'u' para elegir el cliente")
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.checkout())
}

// ensureCursorVisible adjusts the scroll offset so the cursor stays on screen.
func (m *Model) ensureCursorVisible() {
	available := m.catalogHeight()
	if available < 1 {
		available = 1
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+available {
		m.scrollOffset = m.cursor - available + 1
	}
}
