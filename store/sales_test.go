package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/MAPO-UPTC/mapo-cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSales(n, offset int) []models.Sale {
	sales := make([]models.Sale, n)
	for i := range sales {
		sales[i] = models.Sale{ID: fmt.Sprintf("s%d", offset+i)}
	}
	return sales
}

func TestSalesPagination(t *testing.T) {
	backend := testutil.NewFakeBackend()
	// 3 sales total at page size 2: one full page then a short one.
	backend.SalesHook = func(call, skip, limit int) ([]models.Sale, error) {
		all := makeSales(3, 0)
		if skip >= len(all) {
			return nil, nil
		}
		end := skip + limit
		if end > len(all) {
			end = len(all)
		}
		return all[skip:end], nil
	}

	s := New(backend, WithPageSize(2))
	ctx := context.Background()

	require.NoError(t, s.LoadSalesHistory(ctx, models.SalesFilter{}))
	assert.Len(t, s.Sales(), 2)
	assert.True(t, s.HasMoreSales(), "a full page reads as more available")

	require.NoError(t, s.LoadMoreSales(ctx))
	assert.Len(t, s.Sales(), 3)
	assert.False(t, s.HasMoreSales(), "a short page ends pagination")

	// Further loads are no-ops without a network call.
	calls := backend.CallCount("SalesHistory")
	require.NoError(t, s.LoadMoreSales(ctx))
	assert.Equal(t, calls, backend.CallCount("SalesHistory"))
}

// The known approximation: a final page that is exactly full still reads as
// hasMore=true until the next fetch returns empty.
func TestSalesPaginationExactMultiple(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.SalesHook = func(call, skip, limit int) ([]models.Sale, error) {
		all := makeSales(4, 0)
		if skip >= len(all) {
			return nil, nil
		}
		return all[skip : skip+limit], nil
	}

	s := New(backend, WithPageSize(2))
	ctx := context.Background()

	require.NoError(t, s.LoadSalesHistory(ctx, models.SalesFilter{}))
	require.NoError(t, s.LoadMoreSales(ctx))
	assert.Len(t, s.Sales(), 4)
	assert.True(t, s.HasMoreSales(),
		"an exactly-full final page is indistinguishable from a partial catalog")

	require.NoError(t, s.LoadMoreSales(ctx))
	assert.Len(t, s.Sales(), 4)
	assert.False(t, s.HasMoreSales())
}

func TestLoadSalesHistoryResetsPagination(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.SalesHook = func(call, skip, limit int) ([]models.Sale, error) {
		return makeSales(limit, skip), nil
	}

	s := New(backend, WithPageSize(2))
	ctx := context.Background()

	require.NoError(t, s.LoadSalesHistory(ctx, models.SalesFilter{}))
	require.NoError(t, s.LoadMoreSales(ctx))
	assert.Len(t, s.Sales(), 4)

	// A fresh history load starts over from skip 0.
	require.NoError(t, s.LoadSalesHistory(ctx, models.SalesFilter{Status: models.SaleStatusCompleted}))
	assert.Len(t, s.Sales(), 2)
}

func TestSaleDetailsPassthrough(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.SaleDetailsResponse = &models.Sale{
		ID: "s1",
		Items: []models.SaleDetail{
			{ID: "d1", Quantity: testutil.Dec(t, "3"), QuantityNet: testutil.Dec(t, "2")},
		},
	}
	s := New(backend)

	sale, err := s.SaleDetails(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, sale.Items, 1)
	assert.True(t, sale.Items[0].QuantityNet.Equal(testutil.Dec(t, "2")))
}

func TestUpdateSaleStatusPatchesCache(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.SalesResponse = []models.Sale{
		{ID: "s1", Status: models.SaleStatusPending},
		{ID: "s2", Status: models.SaleStatusCompleted},
	}

	s := New(backend)
	ctx := context.Background()
	require.NoError(t, s.LoadSalesHistory(ctx, models.SalesFilter{}))

	sale, err := s.UpdateSaleStatus(ctx, "s1", models.SaleStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.SaleStatusCancelled, sale.Status)

	cached := s.Sales()
	assert.Equal(t, models.SaleStatusCancelled, cached[0].Status)
	assert.Equal(t, models.SaleStatusCompleted, cached[1].Status, "other sales stay untouched")

	notifications := s.Notifications()
	require.NotEmpty(t, notifications)
	assert.Equal(t, NotificationSuccess, notifications[len(notifications)-1].Type)
}

func TestUpdateSaleStatusFailureNotifies(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.SaleStatusErr = assert.AnError

	s := New(backend)
	_, err := s.UpdateSaleStatus(context.Background(), "s1", models.SaleStatusCancelled)
	require.Error(t, err)

	notifications := s.Notifications()
	require.NotEmpty(t, notifications)
	assert.Equal(t, NotificationError, notifications[len(notifications)-1].Type)
}
