package store

import (
	"context"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
)

// LoadSalesHistory replaces the sales cache with the first page matching the
// filter. hasMore is inferred from the page being exactly full; the backend
// offers no authoritative total, so a final page that happens to be an exact
// multiple of the page size reads as "more available" until the next fetch
// comes back empty.
func (s *Store) LoadSalesHistory(ctx context.Context, filter models.SalesFilter) error {
	s.mu.Lock()
	s.salesGen++
	gen := s.salesGen
	s.salesFilter = filter
	s.mu.Unlock()

	sales, err := s.backend.SalesHistory(ctx, 0, s.pageSize, filter)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudieron cargar las ventas", userMessage(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.salesGen {
		s.log.WithField("generation", gen).Debug("Dropping stale sales load")
		return nil
	}
	s.sales = sales
	s.salesSkip = len(sales)
	s.hasMoreSales = len(sales) == s.pageSize
	s.publish(EventSales)
	return nil
}

// LoadMoreSales appends the next page to the sales cache using the filter
// from the last LoadSalesHistory call. A no-op when the previous page was
// short.
func (s *Store) LoadMoreSales(ctx context.Context) error {
	s.mu.Lock()
	if !s.hasMoreSales {
		s.mu.Unlock()
		return nil
	}
	s.salesGen++
	gen := s.salesGen
	skip := s.salesSkip
	filter := s.salesFilter
	s.mu.Unlock()

	sales, err := s.backend.SalesHistory(ctx, skip, s.pageSize, filter)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudieron cargar las ventas", userMessage(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.salesGen {
		s.log.WithField("generation", gen).Debug("Dropping stale sales page")
		return nil
	}
	s.sales = append(s.sales, sales...)
	s.salesSkip += len(sales)
	s.hasMoreSales = len(sales) == s.pageSize
	s.publish(EventSales)
	return nil
}

// Sales returns a copy of the cached sales.
func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// HasMoreSales reports whether another page is believed to exist.
func (s *Store) HasMoreSales() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasMoreSales
}

// SaleDetails fetches one sale with full detail lines, including per-line
// return ceilings. Not cached; returns are infrequent enough that a fresh
// fetch is always correct.
func (s *Store) SaleDetails(ctx context.Context, saleID string) (*models.Sale, error) {
	sale, err := s.backend.SaleDetails(ctx, saleID)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudo cargar la venta", userMessage(err))
		return nil, err
	}
	return sale, nil
}

// UpdateSaleStatus transitions a sale through the backend and patches the
// cached copy, if any, so an open history listing reflects the change.
func (s *Store) UpdateSaleStatus(ctx context.Context, saleID string, status models.SaleStatus) (*models.Sale, error) {
	sale, err := s.backend.UpdateSaleStatus(ctx, saleID, status)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudo actualizar la venta", userMessage(err))
		return nil, err
	}

	s.mu.Lock()
	for idx := range s.sales {
		if s.sales[idx].ID == sale.ID {
			s.sales[idx].Status = sale.Status
			s.publish(EventSales)
			break
		}
	}
	s.mu.Unlock()

	s.AddNotification(NotificationSuccess, "Venta actualizada",
		"La venta "+sale.ID+" ahora está "+string(sale.Status))
	return sale, nil
}
