package store

import (
	"context"

	"github.com/MAPO-UPTC/mapo-cli/errors"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/shopspring/decimal"
)

// LotDetails fetches the available lot details for a presentation, in the
// backend's FIFO order (oldest received first). The order is trusted as
// returned and never re-sorted client-side.
func (s *Store) LotDetails(ctx context.Context, presentationID string) ([]models.InventoryLotDetail, error) {
	resp, err := s.backend.LotDetails(ctx, presentationID)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudieron cargar los lotes", userMessage(err))
		return nil, err
	}
	return resp.Data, nil
}

// OpenBulk opens packaged units into loose stock. The resulting-units
// preview shown to the user before confirming comes from
// BulkConversionRequest.TotalUnitsResulting; the backend owns the actual
// stock movement.
func (s *Store) OpenBulk(ctx context.Context, req models.BulkConversionRequest) (*models.BulkConversion, error) {
	if req.ConvertedQuantity.LessThanOrEqual(decimal.Zero) || req.UnitConversionFactor <= 0 {
		err := errors.InvalidQuantity(req.ConvertedQuantity.String())
		s.AddNotification(NotificationError, "Conversión inválida", userMessage(err))
		return nil, err
	}

	conv, err := s.backend.OpenBulk(ctx, req)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudo abrir el granel", userMessage(err))
		return nil, err
	}

	s.AddNotification(NotificationSuccess, "Granel abierto",
		conv.ConvertedQuantity.String()+" unidad(es) abiertas en "+conv.TotalUnitsResulting.String()+" unidades sueltas")
	return conv, nil
}

// LoadCustomers fetches the customer list for sale registration.
func (s *Store) LoadCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.backend.ListCustomers(ctx)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudieron cargar los clientes", userMessage(err))
		return nil, err
	}
	return customers, nil
}

// CreateCustomer registers a new customer and selects it for the next sale.
func (s *Store) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	created, err := s.backend.CreateCustomer(ctx, customer)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudo registrar el cliente", userMessage(err))
		return nil, err
	}

	s.SetCustomer(created)
	s.AddNotification(NotificationSuccess, "Cliente registrado", created.Name)
	return created, nil
}

// LoadSuppliers fetches the supplier list.
func (s *Store) LoadSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.backend.ListSuppliers(ctx)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudieron cargar los proveedores", userMessage(err))
		return nil, err
	}
	return suppliers, nil
}

// CreateSupplier registers a new supplier.
func (s *Store) CreateSupplier(ctx context.Context, supplier models.Supplier) (*models.Supplier, error) {
	created, err := s.backend.CreateSupplier(ctx, supplier)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudo registrar el proveedor", userMessage(err))
		return nil, err
	}

	s.AddNotification(NotificationSuccess, "Proveedor registrado", created.Name)
	return created, nil
}

// LoadCategories fetches the catalog categories.
func (s *Store) LoadCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.backend.ListCategories(ctx)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudieron cargar las categorías", userMessage(err))
		return nil, err
	}
	return categories, nil
}
