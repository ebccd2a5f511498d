package store

import (
	"context"
	"testing"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/MAPO-UPTC/mapo-cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleWithNet(t *testing.T, net string) *models.Sale {
	return &models.Sale{
		ID: "s1",
		Items: []models.SaleDetail{
			{
				ID:          "d1",
				Quantity:    testutil.Dec(t, "5"),
				QuantityNet: testutil.Dec(t, net),
			},
		},
	}
}

func TestCreateReturnBoundedByQuantityNet(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.ReturnResponse = &models.Return{ID: "r1", SaleID: "s1", Status: models.ReturnStatusPending}
	s := New(backend)
	ctx := context.Background()

	sale := saleWithNet(t, "2")

	// Over the ceiling: rejected before the network.
	_, err := s.CreateReturn(ctx, sale, models.CreateReturnRequest{
		SaleID: "s1",
		Reason: "damaged",
		Items: []models.ReturnItem{
			{SaleDetailID: "d1", QuantityReturned: testutil.Dec(t, "3"), Condition: models.ConditionDamaged},
		},
	})
	assert.Error(t, err)
	assert.Equal(t, 0, backend.CallCount("CreateReturn"))

	// Zero quantity: rejected.
	_, err = s.CreateReturn(ctx, sale, models.CreateReturnRequest{
		SaleID: "s1",
		Items: []models.ReturnItem{
			{SaleDetailID: "d1", QuantityReturned: testutil.Dec(t, "0")},
		},
	})
	assert.Error(t, err)
	assert.Equal(t, 0, backend.CallCount("CreateReturn"))

	// At the ceiling: accepted.
	ret, err := s.CreateReturn(ctx, sale, models.CreateReturnRequest{
		SaleID: "s1",
		Reason: "damaged",
		Items: []models.ReturnItem{
			{SaleDetailID: "d1", QuantityReturned: testutil.Dec(t, "2"), Condition: models.ConditionDamaged},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", ret.ID)
	assert.Equal(t, 1, backend.CallCount("CreateReturn"))
}

func TestUpdateReturnStatus(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.ReturnResponse = &models.Return{ID: "r1", Status: models.ReturnStatusApproved}
	s := New(backend)

	ret, err := s.UpdateReturnStatus(context.Background(), "r1", models.ReturnStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ReturnStatusApproved, ret.Status)
}

func TestOpenBulkValidation(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.OpenBulkResponse = &models.BulkConversion{
		ID:                  "bc1",
		ConvertedQuantity:   testutil.Dec(t, "3"),
		TotalUnitsResulting: testutil.Dec(t, "75"),
	}
	s := New(backend)
	ctx := context.Background()

	// Non-positive quantity or factor never reaches the backend.
	_, err := s.OpenBulk(ctx, models.BulkConversionRequest{
		SourceLotDetailID:    "ld1",
		TargetPresentationID: "p2",
		ConvertedQuantity:    testutil.Dec(t, "0"),
		UnitConversionFactor: 25,
	})
	assert.Error(t, err)
	assert.Equal(t, 0, backend.CallCount("OpenBulk"))

	conv, err := s.OpenBulk(ctx, models.BulkConversionRequest{
		SourceLotDetailID:    "ld1",
		TargetPresentationID: "p2",
		ConvertedQuantity:    testutil.Dec(t, "3"),
		UnitConversionFactor: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, "bc1", conv.ID)
}

func TestLotDetailsFIFOOrderTrusted(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.LotDetailsResponse = &models.LotDetailsResponse{
		Success: true,
		Data: []models.InventoryLotDetail{
			{ID: "old", QuantityAvailable: testutil.Dec(t, "2")},
			{ID: "new", QuantityAvailable: testutil.Dec(t, "10")},
		},
		Count: 2,
	}
	s := New(backend)

	details, err := s.LotDetails(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "old", details[0].ID, "backend order is preserved as-is")
}
