package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle state of a sale. Transitions are performed
// entirely server-side; the client only displays whatever it last fetched.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Customer is the buyer a sale is registered against.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Sale is an immutable transaction record once created.
type Sale struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Customer      *Customer       `json:"customer,omitempty"`
	Status        SaleStatus      `json:"status"`
	Total         decimal.Decimal `json:"total"`
	TotalRefunded decimal.Decimal `json:"total_refunded"`
	TotalNet      decimal.Decimal `json:"total_net"`
	Items         []SaleDetail    `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleDetail is one line of a sale.
type SaleDetail struct {
	ID               string          `json:"id"`
	PresentationID   string          `json:"presentation_id"`
	PresentationName string          `json:"presentation_name,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	QuantityReturned decimal.Decimal `json:"quantity_returned"`
	// QuantityNet is the server-computed ceiling still returnable on this
	// line: original quantity minus what was already returned.
	QuantityNet decimal.Decimal `json:"quantity_net"`
}

// CreateSaleRequest is the payload for POST /sales/.
type CreateSaleRequest struct {
	CustomerID string           `json:"customer_id"`
	Status     SaleStatus       `json:"status"`
	Items      []CreateSaleItem `json:"items"`
}

// CreateSaleItem is one requested line of a new sale.
type CreateSaleItem struct {
	PresentationID string          `json:"presentation_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}

// SalesFilter narrows a sales history query.
type SalesFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    SaleStatus
}
