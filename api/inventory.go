package api

import (
	"context"
	"fmt"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
)

// LotDetails fetches the available lot details for a presentation. The
// backend returns them oldest received first; the client trusts that order
// and never re-sorts.
func (c *Client) LotDetails(ctx context.Context, presentationID string) (*models.LotDetailsResponse, error) {
	var resp models.LotDetailsResponse
	path := fmt.Sprintf("/inventory/presentations/%s/lot-details", presentationID)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OpenBulk opens packaged units from a lot detail into loose stock on the
// target presentation. Stock bookkeeping is entirely server-side.
func (c *Client) OpenBulk(ctx context.Context, req models.BulkConversionRequest) (*models.BulkConversion, error) {
	var conv models.BulkConversion
	if err := c.post(ctx, "/products/open-bulk/", req, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}
