// Package testutil provides shared fixtures for tests: a scriptable
// in-memory backend and presentation builders.
package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/shopspring/decimal"
)

// Dec parses a decimal literal, failing the test on bad input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// Presentation builds a packaged presentation fixture.
func Presentation(t *testing.T, id, name, stock, price string) models.ProductPresentation {
	t.Helper()
	return models.ProductPresentation{
		ID:               id,
		PresentationName: name,
		StockAvailable:   Dec(t, stock),
		Price:            Dec(t, price),
	}
}

// BulkPresentation builds a presentation fixture with a bulk stock counter.
func BulkPresentation(t *testing.T, id, name, bulkStock, price string) models.ProductPresentation {
	t.Helper()
	bulk := Dec(t, bulkStock)
	return models.ProductPresentation{
		ID:                 id,
		PresentationName:   name,
		BulkStockAvailable: &bulk,
		Price:              Dec(t, price),
	}
}

// FakeBackend is a scriptable store.Backend. Each response field, when set,
// overrides the zero-value default. Call counts are recorded per operation.
type FakeBackend struct {
	mu    sync.Mutex
	Calls map[string]int

	LoginResponse *models.LoginResponse
	LoginErr      error

	ProductsResponse []models.Product
	ProductsErr      error
	// ProductsHook, when set, is called per ListProducts invocation and its
	// result wins. Used to coordinate out-of-order responses.
	ProductsHook func(call int) ([]models.Product, error)

	CategoriesResponse []models.Category
	CategoriesErr      error

	CustomersResponse []models.Customer
	CustomersErr      error
	// CreateCustomerResponse overrides the default echo-back behavior.
	CreateCustomerResponse *models.Customer
	CreateCustomerErr      error

	SuppliersResponse []models.Supplier
	SuppliersErr      error
	CreateSupplierErr error

	CreateSaleResponse *models.Sale
	CreateSaleErr      error
	LastSaleRequest    *models.CreateSaleRequest

	SalesResponse []models.Sale
	SalesErr      error
	// SalesHook, when set, is called per SalesHistory invocation with the
	// requested skip and its result wins.
	SalesHook func(call, skip, limit int) ([]models.Sale, error)

	SaleDetailsResponse *models.Sale
	SaleDetailsErr      error

	SaleStatusErr error

	LotDetailsResponse *models.LotDetailsResponse
	LotDetailsErr      error

	OpenBulkResponse *models.BulkConversion
	OpenBulkErr      error

	ReturnResponse *models.Return
	ReturnErr      error
}

// NewFakeBackend creates an empty fake backend.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{Calls: make(map[string]int)}
}

func (f *FakeBackend) record(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[op]++
	return f.Calls[op]
}

// CallCount returns how many times an operation was invoked.
func (f *FakeBackend) CallCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[op]
}

func (f *FakeBackend) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	f.record("Login")
	return f.LoginResponse, f.LoginErr
}

func (f *FakeBackend) ListProducts(ctx context.Context) ([]models.Product, error) {
	call := f.record("ListProducts")
	if f.ProductsHook != nil {
		return f.ProductsHook(call)
	}
	return f.ProductsResponse, f.ProductsErr
}

func (f *FakeBackend) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.record("ListCategories")
	return f.CategoriesResponse, f.CategoriesErr
}

func (f *FakeBackend) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	f.record("ProductsByCategory")
	return f.ProductsResponse, f.ProductsErr
}

func (f *FakeBackend) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	f.record("ListCustomers")
	return f.CustomersResponse, f.CustomersErr
}

func (f *FakeBackend) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	f.record("CreateCustomer")
	if f.CreateCustomerErr != nil {
		return nil, f.CreateCustomerErr
	}
	if f.CreateCustomerResponse != nil {
		return f.CreateCustomerResponse, nil
	}
	return &customer, nil
}

func (f *FakeBackend) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	f.record("ListSuppliers")
	return f.SuppliersResponse, f.SuppliersErr
}

func (f *FakeBackend) CreateSupplier(ctx context.Context, supplier models.Supplier) (*models.Supplier, error) {
	f.record("CreateSupplier")
	if f.CreateSupplierErr != nil {
		return nil, f.CreateSupplierErr
	}
	return &supplier, nil
}

func (f *FakeBackend) CreateSale(ctx context.Context, req models.CreateSaleRequest) (*models.Sale, error) {
	f.record("CreateSale")
	f.mu.Lock()
	f.LastSaleRequest = &req
	f.mu.Unlock()
	return f.CreateSaleResponse, f.CreateSaleErr
}

func (f *FakeBackend) SalesHistory(ctx context.Context, skip, limit int, filter models.SalesFilter) ([]models.Sale, error) {
	call := f.record("SalesHistory")
	if f.SalesHook != nil {
		return f.SalesHook(call, skip, limit)
	}
	return f.SalesResponse, f.SalesErr
}

func (f *FakeBackend) SaleDetails(ctx context.Context, saleID string) (*models.Sale, error) {
	f.record("SaleDetails")
	return f.SaleDetailsResponse, f.SaleDetailsErr
}

// UpdateSaleStatus echoes a sale carrying the requested status unless
// scripted to fail.
func (f *FakeBackend) UpdateSaleStatus(ctx context.Context, saleID string, status models.SaleStatus) (*models.Sale, error) {
	f.record("UpdateSaleStatus")
	if f.SaleStatusErr != nil {
		return nil, f.SaleStatusErr
	}
	return &models.Sale{ID: saleID, Status: status}, nil
}

func (f *FakeBackend) LotDetails(ctx context.Context, presentationID string) (*models.LotDetailsResponse, error) {
	f.record("LotDetails")
	return f.LotDetailsResponse, f.LotDetailsErr
}

func (f *FakeBackend) OpenBulk(ctx context.Context, req models.BulkConversionRequest) (*models.BulkConversion, error) {
	f.record("OpenBulk")
	return f.OpenBulkResponse, f.OpenBulkErr
}

func (f *FakeBackend) CreateReturn(ctx context.Context, req models.CreateReturnRequest) (*models.Return, error) {
	f.record("CreateReturn")
	return f.ReturnResponse, f.ReturnErr
}

func (f *FakeBackend) UpdateReturnStatus(ctx context.Context, returnID string, status models.ReturnStatus) (*models.Return, error) {
	f.record("UpdateReturnStatus")
	return f.ReturnResponse, f.ReturnErr
}
