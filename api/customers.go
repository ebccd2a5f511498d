package api

import (
	"context"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
)

// ListCustomers fetches all registered customers.
func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.get(ctx, "/customers/", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CreateCustomer registers a new customer.
func (c *Client) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	var created models.Customer
	if err := c.post(ctx, "/customers/", customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListSuppliers fetches all registered suppliers.
func (c *Client) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := c.get(ctx, "/suppliers/", nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// CreateSupplier registers a new supplier.
func (c *Client) CreateSupplier(ctx context.Context, supplier models.Supplier) (*models.Supplier, error) {
	var created models.Supplier
	if err := c.post(ctx, "/suppliers/", supplier, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
