package api

import (
	"context"
	"fmt"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
)

// CreateReturn submits a reversal request against a sale. Per-line ceilings
// are enforced server-side against each detail's quantity_net.
func (c *Client) CreateReturn(ctx context.Context, req models.CreateReturnRequest) (*models.Return, error) {
	var ret models.Return
	if err := c.post(ctx, "/returns/", req, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

// UpdateReturnStatus transitions a return request (approve/reject).
func (c *Client) UpdateReturnStatus(ctx context.Context, returnID string, status models.ReturnStatus) (*models.Return, error) {
	var ret models.Return
	path := fmt.Sprintf("/returns/%s/status", returnID)
	if err := c.put(ctx, path, models.UpdateReturnStatusRequest{Status: status}, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}
