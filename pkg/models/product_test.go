package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestIsBulkClassification(t *testing.T) {
	tests := []struct {
		name     string
		pres     ProductPresentation
		wantBulk bool
	}{
		{
			// Name signal alone: no bulk counter sent by the backend.
			name: "granel name without bulk counter",
			pres: ProductPresentation{
				PresentationName: "Alimento Granel",
				StockAvailable:   dec("3"),
			},
			wantBulk: true,
		},
		{
			// Field-presence signal alone: ordinary name, but the backend
			// sent a bulk counter.
			name: "packaged name with bulk counter present",
			pres: ProductPresentation{
				PresentationName:   "Bolsa 1kg",
				StockAvailable:     dec("2"),
				BulkStockAvailable: decPtr("5"),
			},
			wantBulk: true,
		},
		{
			name: "granel name uppercase",
			pres: ProductPresentation{
				PresentationName: "MAIZ GRANEL 1KG",
			},
			wantBulk: true,
		},
		{
			name: "packaged presentation",
			pres: ProductPresentation{
				PresentationName: "Bolsa 25kg",
				StockAvailable:   dec("10"),
			},
			wantBulk: false,
		},
		{
			// A bulk counter explicitly at zero still marks the
			// presentation as bulk; absence is the only negative signal.
			name: "bulk counter present but zero",
			pres: ProductPresentation{
				PresentationName:   "Bolsa 5kg",
				BulkStockAvailable: decPtr("0"),
			},
			wantBulk: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBulk, tt.pres.IsBulk())
		})
	}
}

func TestAvailableStockSelectsCounter(t *testing.T) {
	packaged := ProductPresentation{
		PresentationName: "Bolsa 25kg",
		StockAvailable:   dec("10"),
	}
	assert.True(t, packaged.AvailableStock().Equal(dec("10")))

	bulk := ProductPresentation{
		PresentationName:   "Alimento Granel",
		StockAvailable:     dec("4"),
		BulkStockAvailable: decPtr("7.5"),
	}
	assert.True(t, bulk.AvailableStock().Equal(dec("7.5")))

	// Bulk by name with no counter at all reads as zero loose stock.
	bulkNoCounter := ProductPresentation{
		PresentationName: "Arroz Granel",
		StockAvailable:   dec("4"),
	}
	assert.True(t, bulkNoCounter.AvailableStock().IsZero())
}

func TestTotalStock(t *testing.T) {
	pres := ProductPresentation{
		StockAvailable:     dec("4"),
		BulkStockAvailable: decPtr("7.5"),
	}
	assert.True(t, pres.TotalStock().Equal(dec("11.5")))

	pres = ProductPresentation{StockAvailable: dec("4")}
	assert.True(t, pres.TotalStock().Equal(dec("4")))
}

func TestMatchesQuery(t *testing.T) {
	product := Product{
		Name: "Alimento Perro Adulto",
		SKU:  "ALI-001",
		Presentations: []ProductPresentation{
			{PresentationName: "Bolsa 25kg", SKU: "ALI-001-25"},
			{PresentationName: "Granel por kg"},
		},
	}

	assert.True(t, product.MatchesQuery("perro"))
	assert.True(t, product.MatchesQuery("ali-001"))
	assert.True(t, product.MatchesQuery("granel"))
	assert.True(t, product.MatchesQuery(""))
	assert.False(t, product.MatchesQuery("gato"))
}

func TestBulkConversionPreview(t *testing.T) {
	req := BulkConversionRequest{
		ConvertedQuantity:    dec("3"),
		UnitConversionFactor: 25,
	}
	assert.True(t, req.TotalUnitsResulting().Equal(dec("75")))
}
