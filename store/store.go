// Package store is the client-side single source of truth for MAPO state:
// the authenticated user, the shopping cart, the product and sales caches,
// and UI notifications. All mutation goes through action methods; readers
// observe changes through the subscription channel. The store's stock checks
// are advisory only. The backend re-validates every sale, so nothing here is
// a correctness guarantee; it exists to give the user immediate feedback.
package store

import (
	"context"
	"sync"

	"github.com/MAPO-UPTC/mapo-cli/logging"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Backend is the store's only collaborator: the REST client it orchestrates.
// *api.Client satisfies it; tests substitute fakes.
type Backend interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	CreateSupplier(ctx context.Context, supplier models.Supplier) (*models.Supplier, error)
	CreateSale(ctx context.Context, req models.CreateSaleRequest) (*models.Sale, error)
	SalesHistory(ctx context.Context, skip, limit int, filter models.SalesFilter) ([]models.Sale, error)
	SaleDetails(ctx context.Context, saleID string) (*models.Sale, error)
	UpdateSaleStatus(ctx context.Context, saleID string, status models.SaleStatus) (*models.Sale, error)
	LotDetails(ctx context.Context, presentationID string) (*models.LotDetailsResponse, error)
	OpenBulk(ctx context.Context, req models.BulkConversionRequest) (*models.BulkConversion, error)
	CreateReturn(ctx context.Context, req models.CreateReturnRequest) (*models.Return, error)
	UpdateReturnStatus(ctx context.Context, returnID string, status models.ReturnStatus) (*models.Return, error)
}

// EventKind names a slice of state that changed.
type EventKind string

const (
	EventAuth          EventKind = "auth"
	EventCart          EventKind = "cart"
	EventProducts      EventKind = "products"
	EventSales         EventKind = "sales"
	EventNotifications EventKind = "notifications"
)

// Event is pushed to subscribers after a state change commits.
type Event struct {
	Kind EventKind
}

// Store holds all client-side mutable state.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	log     *logrus.Entry

	pageSize int
	currency string

	// auth slice
	user *models.User

	// cart slice
	customer  *models.Customer
	cart      []CartItem
	cartTotal decimal.Decimal

	// inventory cache slice
	products []models.Product

	// sales cache slice
	sales        []models.Sale
	salesSkip    int
	hasMoreSales bool
	salesFilter  models.SalesFilter

	// ui slice
	notifications []Notification

	// Generation counters: each logical load operation bumps its counter at
	// issue time and commits only if still current at resolve time, so a
	// slow stale response can never overwrite a newer one.
	productsGen uint64
	salesGen    uint64

	subscribers map[int]chan Event
	nextSubID   int
}

// Option configures a Store.
type Option func(*Store)

// WithPageSize sets the sales history page size.
func WithPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithCurrency sets the currency code used when formatting totals.
func WithCurrency(code string) Option {
	return func(s *Store) {
		if code != "" {
			s.currency = code
		}
	}
}

// New creates an empty store bound to a backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:      backend,
		log:          logging.NewLogger("store"),
		pageSize:     20,
		currency:     "COP",
		subscribers:  make(map[int]chan Event),
		hasMoreSales: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers an observer. The returned cancel function must be
// called when the observer goes away. Slow observers drop events rather than
// blocking actions.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan Event, 16)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ch, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(ch)
		}
	}
	return ch, cancel
}

// publish notifies subscribers. Callers must hold s.mu.
func (s *Store) publish(kind EventKind) {
	for _, ch := range s.subscribers {
		select {
		case ch <- Event{Kind: kind}:
		default:
		}
	}
}

// User returns the authenticated user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser sets the authenticated user (e.g. restored from a persisted
// session at startup).
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.publish(EventAuth)
}

// Login authenticates against the backend and records the user. The caller
// persists the returned session through the session package.
func (s *Store) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	resp, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.AddNotification(NotificationError, "Inicio de sesión fallido", userMessage(err))
		return nil, err
	}

	s.mu.Lock()
	s.user = &resp.User
	s.publish(EventAuth)
	s.mu.Unlock()

	s.log.WithField("user", resp.User.Email).Info("Logged in")
	return resp, nil
}

// Logout drops the authenticated user and every slice derived from it.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.customer = nil
	s.cart = nil
	s.cartTotal = decimal.Zero
	s.sales = nil
	s.salesSkip = 0
	s.hasMoreSales = true
	s.publish(EventAuth)
	s.publish(EventCart)
	s.publish(EventSales)
}
