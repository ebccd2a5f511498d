package store

import (
	"context"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
)

// LoadAllProducts replaces the product cache with the full catalog.
//
// Each call bumps the products generation at issue time; the response only
// commits if no newer load was issued while it was in flight. Two rapid
// calls therefore resolve to the later-issued one regardless of which
// response arrives first.
func (s *Store) LoadAllProducts(ctx context.Context) error {
	gen := s.beginProductsLoad()

	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudieron cargar los productos", userMessage(err))
		return err
	}

	s.commitProducts(gen, products)
	return nil
}

// LoadProductsByCategory replaces the product cache with one category's
// products. Shares the generation counter with LoadAllProducts since both
// write the same cache.
func (s *Store) LoadProductsByCategory(ctx context.Context, categoryID string) error {
	gen := s.beginProductsLoad()

	products, err := s.backend.ProductsByCategory(ctx, categoryID)
	if err != nil {
		s.AddNotification(NotificationError, "No se pudieron cargar los productos", userMessage(err))
		return err
	}

	s.commitProducts(gen, products)
	return nil
}

func (s *Store) beginProductsLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productsGen++
	return s.productsGen
}

func (s *Store) commitProducts(gen uint64, products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.productsGen {
		s.log.WithField("generation", gen).Debug("Dropping stale product load")
		return
	}
	s.products = products
	s.publish(EventProducts)
}

// Products returns a copy of the cached catalog.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// SearchProducts filters the already-cached list by a case-insensitive
// substring match on product name, SKU, or presentation name. It never hits
// the network, so it only ever searches within whatever was last loaded.
func (s *Store) SearchProducts(query string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Product
	for _, p := range s.products {
		if p.MatchesQuery(query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FindPresentation looks up a cached presentation by id.
func (s *Store) FindPresentation(presentationID string) (models.ProductPresentation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		for _, pres := range p.Presentations {
			if pres.ID == presentationID {
				return pres, true
			}
		}
	}
	return models.ProductPresentation{}, false
}
