package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is a source of received inventory lots.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// InventoryLot is a received batch of stock from a supplier. The backend
// consumes lots in FIFO order by received date; the client only asks for
// available lot details and trusts the order returned.
type InventoryLot struct {
	ID           string               `json:"id"`
	SupplierID   string               `json:"supplier_id"`
	Supplier     *Supplier            `json:"supplier,omitempty"`
	ReceivedDate time.Time            `json:"received_date"`
	BatchNumber  string               `json:"batch_number,omitempty"`
	ExpiryDate   *time.Time           `json:"expiry_date,omitempty"`
	Details      []InventoryLotDetail `json:"details,omitempty"`
}

// InventoryLotDetail tracks a single presentation within a lot.
type InventoryLotDetail struct {
	ID                string          `json:"id"`
	LotID             string          `json:"lot_id"`
	PresentationID    string          `json:"presentation_id"`
	QuantityReceived  decimal.Decimal `json:"quantity_received"`
	QuantityAvailable decimal.Decimal `json:"quantity_available"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	ReceivedDate      time.Time       `json:"received_date"`
	BatchNumber       string          `json:"batch_number,omitempty"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
}

// LotDetailsResponse is the envelope GET /inventory/presentations/{id}/lot-details returns.
type LotDetailsResponse struct {
	Success  bool                 `json:"success"`
	Data     []InventoryLotDetail `json:"data"`
	Count    int                  `json:"count"`
	Metadata map[string]any       `json:"metadata,omitempty"`
}

// BulkConversionRequest opens N packaged units into loose stock.
type BulkConversionRequest struct {
	SourceLotDetailID    string          `json:"source_lot_detail_id"`
	TargetPresentationID string          `json:"target_presentation_id"`
	ConvertedQuantity    decimal.Decimal `json:"converted_quantity"`
	UnitConversionFactor int64           `json:"unit_conversion_factor"`
}

// TotalUnitsResulting is the display preview of loose units an open-bulk
// request would yield. The actual stock mutation is server-side.
func (r BulkConversionRequest) TotalUnitsResulting() decimal.Decimal {
	return r.ConvertedQuantity.Mul(decimal.NewFromInt(r.UnitConversionFactor))
}

// BulkConversion records a completed open-bulk operation.
type BulkConversion struct {
	ID                   string          `json:"id"`
	SourceLotDetailID    string          `json:"source_lot_detail_id"`
	TargetPresentationID string          `json:"target_presentation_id"`
	ConvertedQuantity    decimal.Decimal `json:"converted_quantity"`
	UnitConversionFactor int64           `json:"unit_conversion_factor"`
	TotalUnitsResulting  decimal.Decimal `json:"total_units_resulting"`
	CreatedAt            time.Time       `json:"created_at"`
}
