package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
)

// CreateSale submits a new sale. The backend re-validates stock; a conflict
// comes back as an API error carrying the backend's detail message.
func (c *Client) CreateSale(ctx context.Context, req models.CreateSaleRequest) (*models.Sale, error) {
	var sale models.Sale
	if err := c.post(ctx, "/sales/", req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// SalesHistory fetches one page of sales, newest first, filtered by the
// optional date range.
func (c *Client) SalesHistory(ctx context.Context, skip, limit int, filter models.SalesFilter) ([]models.Sale, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))
	if filter.StartDate != nil {
		query.Set("start_date", filter.StartDate.Format(time.RFC3339))
	}
	if filter.EndDate != nil {
		query.Set("end_date", filter.EndDate.Format(time.RFC3339))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	var sales []models.Sale
	if err := c.get(ctx, "/sales/", query, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// SaleDetails fetches one sale with its full detail lines, including the
// server-computed quantity_net return ceiling per line.
func (c *Client) SaleDetails(ctx context.Context, saleID string) (*models.Sale, error) {
	var sale models.Sale
	path := fmt.Sprintf("/sales/%s/details", saleID)
	if err := c.get(ctx, path, nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// UpdateSaleStatus transitions a sale through the backend's status endpoint.
func (c *Client) UpdateSaleStatus(ctx context.Context, saleID string, status models.SaleStatus) (*models.Sale, error) {
	var sale models.Sale
	path := fmt.Sprintf("/sales/%s/status", saleID)
	body := map[string]models.SaleStatus{"status": status}
	if err := c.put(ctx, path, body, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}
