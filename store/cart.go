package store

import (
	"context"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/shopspring/decimal"
)

// CartItem is one staged sale line. MaxAvailable is the advisory stock
// ceiling captured when the line was created; the backend owns the real
// number.
type CartItem struct {
	Presentation models.ProductPresentation
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	MaxAvailable decimal.Decimal
}

// LineTotal is quantity times unit price.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// AddToCart stages a presentation for sale. It rejects non-positive
// quantities, presentations without stock, and requests beyond the locally
// known stock counter (the bulk counter for bulk presentations, the packaged
// one otherwise). Adding a presentation already in the cart merges by
// summing quantities; the combined quantity is validated before anything is
// applied, so a rejected merge leaves the existing line untouched.
//
// Returns true when the cart changed. Every rejection emits a notification;
// this check is advisory UX, the backend re-validates at sale creation.
func (s *Store) AddToCart(pres models.ProductPresentation, quantity, unitPrice decimal.Decimal) bool {
	if quantity.LessThanOrEqual(decimal.Zero) {
		s.AddNotification(NotificationError, "Cantidad inválida", "La cantidad debe ser mayor que cero")
		return false
	}

	available := pres.AvailableStock()
	if available.LessThanOrEqual(decimal.Zero) {
		s.AddNotification(NotificationError, "Sin stock",
			"'"+pres.PresentationName+"' no tiene stock disponible")
		return false
	}
	if quantity.GreaterThan(available) {
		s.AddNotification(NotificationError, "Stock insuficiente",
			"Solo hay "+available.String()+" de '"+pres.PresentationName+"'")
		return false
	}

	s.mu.Lock()
	merged := false
	for idx, item := range s.cart {
		if item.Presentation.ID != pres.ID {
			continue
		}
		combined := item.Quantity.Add(quantity)
		if combined.GreaterThan(available) {
			// Reject without touching the existing line.
			s.mu.Unlock()
			s.AddNotification(NotificationError, "Stock insuficiente",
				"Solo hay "+available.String()+" de '"+pres.PresentationName+"'")
			return false
		}
		s.cart[idx].Quantity = combined
		merged = true
		break
	}
	if !merged {
		s.cart = append(s.cart, CartItem{
			Presentation: pres,
			Quantity:     quantity,
			UnitPrice:    unitPrice,
			MaxAvailable: available,
		})
	}
	s.recomputeTotal()
	s.publish(EventCart)
	s.mu.Unlock()
	return true
}

// RemoveFromCart drops the line for a presentation, if present.
func (s *Store) RemoveFromCart(presentationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.cart[:0]
	for _, item := range s.cart {
		if item.Presentation.ID != presentationID {
			filtered = append(filtered, item)
		}
	}
	s.cart = filtered
	s.recomputeTotal()
	s.publish(EventCart)
}

// UpdateCartQuantity sets the quantity of an existing line. The value is not
// validated against stock; callers are expected to bound their input.
func (s *Store) UpdateCartQuantity(presentationID string, quantity decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, item := range s.cart {
		if item.Presentation.ID == presentationID {
			s.cart[idx].Quantity = quantity
			break
		}
	}
	s.recomputeTotal()
	s.publish(EventCart)
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.recomputeTotal()
	s.publish(EventCart)
}

// recomputeTotal derives the cart total from scratch after every mutation so
// it can never drift from the line totals. Callers must hold s.mu.
func (s *Store) recomputeTotal() {
	total := decimal.Zero
	for _, item := range s.cart {
		total = total.Add(item.LineTotal())
	}
	s.cartTotal = total
}

// CartItems returns a copy of the current cart lines.
func (s *Store) CartItems() []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]CartItem, len(s.cart))
	copy(items, s.cart)
	return items
}

// CartTotal returns the current cart total.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartTotal
}

// Customer returns the customer the next sale will be registered against.
func (s *Store) Customer() *models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customer
}

// SetCustomer selects the customer for the next sale.
func (s *Store) SetCustomer(customer *models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = customer
	s.publish(EventCart)
}

// CreateSale submits the cart as a completed sale. Preconditions (customer
// selected, cart non-empty) are checked before any network call; a failed
// precondition returns nil with a notification. On success the new sale is
// prepended to the sales cache and the cart is cleared. On backend failure
// the cart is left intact and the backend's detail message is surfaced; the
// user re-triggers manually, there is no retry.
func (s *Store) CreateSale(ctx context.Context) (*models.Sale, error) {
	s.mu.RLock()
	customer := s.customer
	items := make([]models.CreateSaleItem, 0, len(s.cart))
	for _, item := range s.cart {
		items = append(items, models.CreateSaleItem{
			PresentationID: item.Presentation.ID,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
		})
	}
	s.mu.RUnlock()

	if customer == nil {
		s.AddNotification(NotificationWarning, "Sin cliente", "Selecciona un cliente antes de cobrar")
		return nil, nil
	}
	if len(items) == 0 {
		s.AddNotification(NotificationWarning, "Carrito vacío", "Agrega productos antes de cobrar")
		return nil, nil
	}

	req := models.CreateSaleRequest{
		CustomerID: customer.ID,
		Status:     models.SaleStatusCompleted,
		Items:      items,
	}

	sale, err := s.backend.CreateSale(ctx, req)
	if err != nil {
		s.log.WithError(err).Warn("Sale creation failed")
		s.AddNotification(NotificationError, "Venta fallida", userMessage(err))
		return nil, err
	}

	s.mu.Lock()
	s.sales = append([]models.Sale{*sale}, s.sales...)
	s.cart = nil
	s.customer = nil
	s.recomputeTotal()
	s.publish(EventCart)
	s.publish(EventSales)
	s.mu.Unlock()

	s.AddNotification(NotificationSuccess, "Venta registrada",
		"Total "+s.FormatMoney(sale.Total))
	s.log.WithField("sale", sale.ID).Info("Sale created")
	return sale, nil
}
