package sell

import (
	"context"
	"testing"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/MAPO-UPTC/mapo-cli/store"
	"github.com/MAPO-UPTC/mapo-cli/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *testutil.FakeBackend) {
	t.Helper()

	backend := testutil.NewFakeBackend()
	backend.ProductsResponse = []models.Product{
		{
			ID:   "p1",
			Name: "Arroz Diana",
			Presentations: []models.ProductPresentation{
				testutil.Presentation(t, "pr1", "Bolsa 500g", "10", "2500"),
				testutil.Presentation(t, "pr2", "Bolsa 1kg", "4", "4800"),
			},
		},
		{
			ID:   "p2",
			Name: "Maíz",
			Presentations: []models.ProductPresentation{
				testutil.BulkPresentation(t, "pr3", "Granel por kg", "25.5", "3200"),
			},
		},
	}

	s := store.New(backend)
	m := New(s)
	t.Cleanup(m.cancel)
	return m, backend
}

func TestRebuildRowsFlattensPresentations(t *testing.T) {
	m, _ := newTestModel(t)
	require.NoError(t, m.store.LoadAllProducts(context.Background()))

	m.rebuildRows()
	require.Len(t, m.rows, 3, "one row per presentation")
	assert.Equal(t, "pr1", m.rows[0].pres.ID)
	assert.Equal(t, "Arroz Diana", m.rows[0].product.Name)
	assert.Equal(t, "pr3", m.rows[2].pres.ID)
	assert.True(t, m.rows[2].pres.IsBulk())
}

func TestRebuildRowsAppliesFilter(t *testing.T) {
	m, _ := newTestModel(t)
	require.NoError(t, m.store.LoadAllProducts(context.Background()))

	m.filterInput.SetValue("granel")
	m.rebuildRows()
	require.Len(t, m.rows, 1)
	assert.Equal(t, "pr3", m.rows[0].pres.ID)

	// Clearing the filter restores the full catalog.
	m.filterInput.SetValue("")
	m.rebuildRows()
	assert.Len(t, m.rows, 3)
}

func TestRebuildRowsClampsCursor(t *testing.T) {
	m, _ := newTestModel(t)
	require.NoError(t, m.store.LoadAllProducts(context.Background()))

	m.rebuildRows()
	m.cursor = 2
	m.filterInput.SetValue("arroz")
	m.rebuildRows()
	assert.Less(t, m.cursor, len(m.rows), "cursor must stay inside the filtered list")

	_, ok := m.selectedRow()
	assert.True(t, ok)
}

func TestQuantityEntryAddsToCart(t *testing.T) {
	m, _ := newTestModel(t)
	require.NoError(t, m.store.LoadAllProducts(context.Background()))
	m.rebuildRows()

	m.cursor = 0
	m.focus = focusQuantity
	m.qtyInput.SetValue("3")
	m.handleQuantityKey(tea.KeyMsg{Type: tea.KeyEnter})

	items := m.store.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, "pr1", items[0].Presentation.ID)
	assert.True(t, testutil.Dec(t, "3").Equal(items[0].Quantity))
	assert.Equal(t, focusCatalog, m.focus)
}

func TestInvalidQuantityNotifiesInsteadOfAdding(t *testing.T) {
	m, _ := newTestModel(t)
	require.NoError(t, m.store.LoadAllProducts(context.Background()))
	m.rebuildRows()

	m.cursor = 0
	m.focus = focusQuantity
	m.qtyInput.SetValue("three")
	m.handleQuantityKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, m.store.CartItems())

	notifications := m.store.Notifications()
	require.NotEmpty(t, notifications)
	assert.Equal(t, store.NotificationWarning, notifications[len(notifications)-1].Type)
}

func TestCheckoutWithEmptyCartShortCircuits(t *testing.T) {
	m, backend := newTestModel(t)

	_, cmd := m.startCheckout()
	assert.Nil(t, cmd, "no command should be issued for an empty cart")
	assert.Equal(t, 0, backend.CallCount("CreateSale"))
	assert.NotEmpty(t, m.store.Notifications())
}

func TestCustomerSelection(t *testing.T) {
	m, backend := newTestModel(t)
	backend.CustomersResponse = []models.Customer{
		{ID: "c1", Name: "Ana"},
		{ID: "c2", Name: "Luis"},
	}

	customers, err := m.store.LoadCustomers(context.Background())
	require.NoError(t, err)
	m.Update(customersLoadedMsg{customers: customers})
	assert.Equal(t, focusCustomer, m.focus)

	m.handleCustomerKey(tea.KeyMsg{Type: tea.KeyDown})
	m.handleCustomerKey(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.store.Customer())
	assert.Equal(t, "c2", m.store.Customer().ID)
	assert.Equal(t, focusCatalog, m.focus)
}

func TestCheckoutWithoutCustomerShortCircuits(t *testing.T) {
	m, backend := newTestModel(t)
	require.NoError(t, m.store.LoadAllProducts(context.Background()))
	m.rebuildRows()

	pres := m.rows[0].pres
	require.True(t, m.store.AddToCart(pres, testutil.Dec(t, "1"), pres.Price))

	_, cmd := m.startCheckout()
	assert.Nil(t, cmd)
	assert.Equal(t, 0, backend.CallCount("CreateSale"))
}
