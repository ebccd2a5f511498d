package sell

import (
	"context"

	"github.com/MAPO-UPTC/mapo-cli/logging"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/MAPO-UPTC/mapo-cli/store"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// row is one selectable catalog line: a presentation together with the
// product that owns it.
type row struct {
	product models.Product
	pres    models.ProductPresentation
}

type focusArea int

const (
	focusCatalog focusArea = iota
	focusFilter
	focusQuantity
	focusCart
	focusCustomer
)

// Model represents the state of the sell screen.
type Model struct {
	store *store.Store
	keys  KeyMap
	log   *logrus.Entry

	filterInput textinput.Model
	qtyInput    textinput.Model
	spin        spinner.Model

	rows           []row
	cursor         int
	scrollOffset   int
	cartCursor     int
	customers      []models.Customer
	customerCursor int
	focus          focusArea
	loading        bool
	showHelp       bool
	lastKeyWasG    bool
	width          int
	height         int

	events <-chan store.Event
	cancel func()
}

type productsLoadedMsg struct {
	err error
}

type saleCreatedMsg struct {
	sale *models.Sale
	err  error
}

type customersLoadedMsg struct {
	customers []models.Customer
	err       error
}

type storeEventMsg struct {
	ev store.Event
}

// New creates a sell screen bound to a store.
func New(s *store.Store) *Model {
	filter := textinput.New()
	filter.Placeholder = "filter products"
	filter.CharLimit = 64

	qty := textinput.New()
	qty.Placeholder = "quantity"
	qty.CharLimit = 12

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	events, cancel := s.Subscribe()

	return &Model{
		store:       s,
		keys:        DefaultKeyMap,
		log:         logging.NewLogger("sell"),
		filterInput: filter,
		qtyInput:    qty,
		spin:        sp,
		loading:     true,
		events:      events,
		cancel:      cancel,
	}
}

// Run starts the sell screen and blocks until the user quits.
func Run(s *store.Store) error {
	m := New(s)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init is the first command that will be executed.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadProducts(), m.waitForEvent())
}

// loadProducts refreshes the catalog from the backend. Errors surface as
// store notifications, so the command only reports completion.
func (m *Model) loadProducts() tea.Cmd {
	return func() tea.Msg {
		err := m.store.LoadAllProducts(context.Background())
		return productsLoadedMsg{err: err}
	}
}

func (m *Model) loadCustomers() tea.Cmd {
	return func() tea.Msg {
		customers, err := m.store.LoadCustomers(context.Background())
		return customersLoadedMsg{customers: customers, err: err}
	}
}

func (m *Model) checkout() tea.Cmd {
	return func() tea.Msg {
		sale, err := m.store.CreateSale(context.Background())
		return saleCreatedMsg{sale: sale, err: err}
	}
}

// waitForEvent pumps store events into the bubbletea loop. It re-arms itself
// from Update after every delivery.
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		return storeEventMsg{ev: ev}
	}
}

// rebuildRows flattens the product cache into one row per presentation,
// filtered by the current search text.
func (m *Model) rebuildRows() {
	products := m.store.SearchProducts(m.filterInput.Value())
	rows := make([]row, 0, len(products))
	for _, p := range products {
		for _, pres := range p.Presentations {
			rows = append(rows, row{product: p, pres: pres})
		}
	}
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectedRow() (row, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}
