package store

import (
	"context"

	"github.com/MAPO-UPTC/mapo-cli/errors"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/shopspring/decimal"
)

// CreateReturn submits a reversal request. Each item's quantity is bounded
// client-side by the sale line's quantity_net ceiling so the user gets
// feedback before the round-trip; the backend enforces the same bound
// authoritatively.
func (s *Store) CreateReturn(ctx context.Context, sale *models.Sale, req models.CreateReturnRequest) (*models.Return, error) {
	for _, item := range req.Items {
		if item.QuantityReturned.LessThanOrEqual(decimal.Zero) {
			err := errors.InvalidQuantity(item.QuantityReturned.String())
			s.AddNotification(NotificationError, "Devolución inválida", userMessage(err))
			return nil, err
		}
		if line := findSaleDetail(sale, item.SaleDetailID); line != nil {
			if item.QuantityReturned.GreaterThan(line.QuantityNet) {
				err := errors.New(errors.ErrCodeInvalidInput,
					"cannot return more than "+line.QuantityNet.String()+" on this line")
				s.AddNotification(NotificationError, "Devolución inválida", userMessage(err))
				return nil, err
			}
		}
	}

	ret, err := s.backend.CreateReturn(ctx, req)
	if err != nil {
		s.AddNotification(NotificationError, "Devolución fallida", userMessage(err))
		return nil, err
	}

	s.AddNotification(NotificationSuccess, "Devolución registrada",
		"Devolución "+ret.ID+" creada para la venta "+ret.SaleID)
	return ret, nil
}

// UpdateReturnStatus transitions a return request through the backend.
func (s *Store) UpdateReturnStatus(ctx context.Context, returnID string, status models.ReturnStatus) (*models.Return, error) {
	ret, err := s.backend.UpdateReturnStatus(ctx, returnID, status)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudo actualizar el estado", userMessage(err))
		return nil, err
	}

	s.AddNotification(NotificationSuccess, "Devolución actualizada",
		"La devolución "+ret.ID+" ahora está "+string(ret.Status))
	return ret, nil
}

func findSaleDetail(sale *models.Sale, detailID string) *models.SaleDetail {
	if sale == nil {
		return nil
	}
	for idx := range sale.Items {
		if sale.Items[idx].ID == detailID {
			return &sale.Items[idx]
		}
	}
	return nil
}
