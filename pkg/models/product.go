package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups products in the catalog.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Product groups one or more presentations under a category and owns the
// descriptive metadata (brand, image, base unit).
type Product struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	SKU           string                `json:"sku,omitempty"`
	Brand         string                `json:"brand,omitempty"`
	ImageURL      string                `json:"image_url,omitempty"`
	BaseUnit      string                `json:"base_unit,omitempty"`
	CategoryID    string                `json:"category_id,omitempty"`
	Category      *Category             `json:"category,omitempty"`
	Presentations []ProductPresentation `json:"presentations"`
}

// ProductPresentation is a purchasable variant of a product, e.g. "Bolsa 25kg"
// vs "Granel por kg". It carries two independent stock counters: sealed
// packaged units and opened/loose quantity.
type ProductPresentation struct {
	ID                 string           `json:"id"`
	ProductID          string           `json:"product_id"`
	PresentationName   string           `json:"presentation_name"`
	ProductName        string           `json:"product_name,omitempty"`
	SKU                string           `json:"sku,omitempty"`
	Price              decimal.Decimal  `json:"price"`
	StockAvailable     decimal.Decimal  `json:"stock_available"`
	BulkStockAvailable *decimal.Decimal `json:"bulk_stock_available,omitempty"`
}

// IsBulk reports whether the presentation is sold in bulk. Two independent
// signals trigger it: the presentation name contains "granel", or the backend
// sent a bulk_stock_available field at all. The backend never reconciles the
// two, so neither signal is authoritative over the other.
func (p ProductPresentation) IsBulk() bool {
	if strings.Contains(strings.ToLower(p.PresentationName), "granel") {
		return true
	}
	return p.BulkStockAvailable != nil
}

// AvailableStock returns the stock counter that applies to this presentation:
// the loose counter for bulk presentations, the packaged counter otherwise.
func (p ProductPresentation) AvailableStock() decimal.Decimal {
	if p.IsBulk() {
		if p.BulkStockAvailable == nil {
			return decimal.Zero
		}
		return *p.BulkStockAvailable
	}
	return p.StockAvailable
}

// TotalStock returns the sum of both stock counters.
func (p ProductPresentation) TotalStock() decimal.Decimal {
	total := p.StockAvailable
	if p.BulkStockAvailable != nil {
		total = total.Add(*p.BulkStockAvailable)
	}
	return total
}

// MatchesQuery reports whether the product or any of its presentations
// matches a case-insensitive substring query on name, SKU, or presentation
// name.
func (p Product) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.SKU), q) {
		return true
	}
	for _, pres := range p.Presentations {
		if strings.Contains(strings.ToLower(pres.PresentationName), q) ||
			strings.Contains(strings.ToLower(pres.SKU), q) {
			return true
		}
	}
	return false
}
