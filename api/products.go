package api

import (
	"context"
	"fmt"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
)

// ListProducts fetches the full product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories fetches all catalog categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ProductsByCategory fetches the products belonging to one category.
func (c *Client) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	path := fmt.Sprintf("/categories/%s/products", categoryID)
	if err := c.get(ctx, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
