package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnStatus is the lifecycle state of a return request.
type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "pending"
	ReturnStatusApproved ReturnStatus = "approved"
	ReturnStatusRejected ReturnStatus = "rejected"
)

// ItemCondition describes the state of returned merchandise.
type ItemCondition string

const (
	ConditionGood    ItemCondition = "good"
	ConditionDamaged ItemCondition = "damaged"
	ConditionExpired ItemCondition = "expired"
)

// Return is a reversal request against specific sale detail lines.
type Return struct {
	ID            string          `json:"id"`
	SaleID        string          `json:"sale_id"`
	Status        ReturnStatus    `json:"status"`
	Reason        string          `json:"reason"`
	Notes         string          `json:"notes,omitempty"`
	TotalRefunded decimal.Decimal `json:"total_refunded"`
	Items         []ReturnItem    `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ReturnItem reverses part of one sale detail line. QuantityReturned is
// bounded by the line's quantity_net; the backend enforces this, the client
// respects it when bounding input.
type ReturnItem struct {
	ID               string          `json:"id,omitempty"`
	SaleDetailID     string          `json:"sale_detail_id"`
	QuantityReturned decimal.Decimal `json:"quantity_returned"`
	Condition        ItemCondition   `json:"condition"`
}

// CreateReturnRequest is the payload for POST /returns/.
type CreateReturnRequest struct {
	SaleID string       `json:"sale_id"`
	Reason string       `json:"reason"`
	Notes  string       `json:"notes,omitempty"`
	Items  []ReturnItem `json:"items"`
}

// UpdateReturnStatusRequest is the payload for PUT /returns/{id}/status.
type UpdateReturnStatusRequest struct {
	Status ReturnStatus `json:"status"`
}
