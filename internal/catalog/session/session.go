package session

import (
	"context"
	"errors"
	"sync"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
	"github.com/homesteadmill/storefront/internal/catalog/usecase/command"
	"github.com/homesteadmill/storefront/kafka"
	"github.com/homesteadmill/storefront/pkg/logger"
)

const defaultPageSize = 50

// Session is the single owner of catalog and cart state. Every write to
// products, collections, cart, and the UI flags passes through it, so
// consumers read a consistent view: the stale cache value is visible until
// the fresh fetch resolves, after which fresh always wins with no merge.
type Session struct {
	refreshHandler    *command.RefreshCatalogHandler
	ensureCartHandler *command.EnsureCartHandler
	addLineHandler    *command.AddLineHandler
	removeLineHandler *command.RemoveLineHandler
	updateLineHandler *command.UpdateLineHandler

	snapshots domain.SnapshotStore
	publisher *kafka.Publisher
	pageSize  int

	mu          sync.RWMutex
	products    []domain.Product
	collections []domain.RawCollection
	index       domain.CategoryIndex
	cart        *domain.Cart
	cartOpen    bool
	menuOpen    bool
	closed      bool

	changes chan struct{}
}

// New creates a session. The publisher may be nil; events are then skipped.
func New(gateway domain.Gateway, snapshots domain.SnapshotStore, cartRefs domain.CartRefStore, publisher *kafka.Publisher) *Session {
	return &Session{
		refreshHandler:    command.NewRefreshCatalogHandler(gateway, snapshots),
		ensureCartHandler: command.NewEnsureCartHandler(gateway, cartRefs),
		addLineHandler:    command.NewAddLineHandler(gateway),
		removeLineHandler: command.NewRemoveLineHandler(gateway),
		updateLineHandler: command.NewUpdateLineHandler(gateway),
		snapshots:         snapshots,
		publisher:         publisher,
		pageSize:          defaultPageSize,
		index:             make(domain.CategoryIndex),
		changes:           make(chan struct{}, 1),
	}
}

// Start primes the session: the cache is consulted synchronously so the first
// read never waits on the network, then the gateway refresh and the cart
// bootstrap run in the background. A fetch still in flight when the session
// closes is abandoned; its result is discarded.
func (s *Session) Start(ctx context.Context) {
	s.loadCached(ctx)

	go func() {
		if err := s.Refresh(ctx); err != nil {
			logger.Error(ctx).Err(err).Msg("Initial catalog refresh failed")
		}
	}()
	go s.initCart(ctx)
}

// loadCached classifies and normalizes the cached snapshot, if one is fresh.
func (s *Session) loadCached(ctx context.Context) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			logger.Warn(ctx).Err(err).Msg("Snapshot load failed")
		}
		return
	}

	index := domain.Classify(snap.Collections)
	products := make([]domain.Product, 0, len(snap.Products))
	for _, raw := range snap.Products {
		products = append(products, domain.Normalize(raw, index))
	}

	s.commitCatalog(products, snap.Collections, index)

	logger.Info(ctx).
		Int("products", len(products)).
		Msg("Catalog primed from snapshot cache")
}

// Refresh fetches a fresh catalog from the gateway and replaces the committed
// state. A failure leaves the current (possibly cached) state in place.
func (s *Session) Refresh(ctx context.Context) error {
	result, err := s.refreshHandler.Handle(ctx, command.RefreshCatalogCommand{PageSize: s.pageSize})
	if err != nil {
		return err
	}

	if !s.commitCatalog(result.Products, result.Collections, result.Index) {
		return nil
	}

	logger.Info(ctx).
		Int("products", len(result.Products)).
		Int("collections", len(result.Collections)).
		Msg("Catalog refreshed from gateway")

	if err := s.publisher.PublishCatalogRefreshed(ctx, kafka.CatalogRefreshedEvent{
		ProductCount:    len(result.Products),
		CollectionCount: len(result.Collections),
	}); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to publish catalog refreshed event")
	}

	return nil
}

// initCart resumes or creates the cart resource.
func (s *Session) initCart(ctx context.Context) {
	cart, err := s.ensureCartHandler.Handle(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Cart initialization failed")
		return
	}
	s.commitCart(cart, false)
}

// AddLine adds a variant to the cart, mirrors the gateway's response, and
// opens the cart affordance. A failed mutation changes nothing locally.
func (s *Session) AddLine(ctx context.Context, variantID string, quantity int) error {
	cart := s.Cart()
	if cart == nil {
		return errors.New("cart not initialized")
	}

	updated, err := s.addLineHandler.Handle(ctx, command.AddLineCommand{
		CartID:    cart.ID,
		VariantID: variantID,
		Quantity:  quantity,
	})
	if err != nil {
		return err
	}

	s.commitCart(updated, true)
	s.publishCartEvent(ctx, kafka.CartUpdatedEvent{
		CartID:    updated.ID,
		Action:    kafka.CartActionAdd,
		VariantID: variantID,
		Quantity:  quantity,
		LineCount: len(updated.LineItems),
	})
	return nil
}

// RemoveLine removes a cart line and mirrors the gateway's response.
func (s *Session) RemoveLine(ctx context.Context, lineID string) error {
	cart := s.Cart()
	if cart == nil {
		return errors.New("cart not initialized")
	}

	updated, err := s.removeLineHandler.Handle(ctx, command.RemoveLineCommand{
		CartID: cart.ID,
		LineID: lineID,
	})
	if err != nil {
		return err
	}

	s.commitCart(updated, false)
	s.publishCartEvent(ctx, kafka.CartUpdatedEvent{
		CartID:    updated.ID,
		Action:    kafka.CartActionRemove,
		LineID:    lineID,
		LineCount: len(updated.LineItems),
	})
	return nil
}

// UpdateLine changes a line quantity and mirrors the gateway's response.
func (s *Session) UpdateLine(ctx context.Context, lineID string, quantity int) error {
	cart := s.Cart()
	if cart == nil {
		return errors.New("cart not initialized")
	}

	updated, err := s.updateLineHandler.Handle(ctx, command.UpdateLineCommand{
		CartID:   cart.ID,
		LineID:   lineID,
		Quantity: quantity,
	})
	if err != nil {
		return err
	}

	s.commitCart(updated, false)
	s.publishCartEvent(ctx, kafka.CartUpdatedEvent{
		CartID:    updated.ID,
		Action:    kafka.CartActionUpdate,
		LineID:    lineID,
		Quantity:  quantity,
		LineCount: len(updated.LineItems),
	})
	return nil
}

func (s *Session) publishCartEvent(ctx context.Context, event kafka.CartUpdatedEvent) {
	if err := s.publisher.PublishCartUpdated(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to publish cart updated event")
	}
}

// commitCatalog replaces the committed catalog. Returns false when the
// session has been closed and the result was discarded.
func (s *Session) commitCatalog(products []domain.Product, collections []domain.RawCollection, index domain.CategoryIndex) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.products = products
	s.collections = collections
	s.index = index
	s.mu.Unlock()

	s.notify()
	return true
}

// commitCart replaces the mirrored cart state.
func (s *Session) commitCart(cart *domain.Cart, openCart bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.cart = cart
	if openCart {
		s.cartOpen = true
	}
	s.mu.Unlock()

	s.notify()
}

// Products returns the committed normalized products.
func (s *Session) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Collections returns the committed raw collections.
func (s *Session) Collections() []domain.RawCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collections
}

// Index returns the committed category index.
func (s *Session) Index() domain.CategoryIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Cart returns a copy of the mirrored cart, or nil before initialization.
func (s *Session) Cart() *domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cart == nil {
		return nil
	}
	cart := *s.cart
	return &cart
}

// CheckoutURL returns the checkout handoff link, or empty.
func (s *Session) CheckoutURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cart == nil {
		return ""
	}
	return s.cart.WebURL
}

// IsCartOpen reports the cart drawer flag.
func (s *Session) IsCartOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartOpen
}

// IsMenuOpen reports the menu flag.
func (s *Session) IsMenuOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menuOpen
}

// OpenCart opens the cart drawer.
func (s *Session) OpenCart() { s.setFlag(&s.cartOpen, true) }

// CloseCart closes the cart drawer.
func (s *Session) CloseCart() { s.setFlag(&s.cartOpen, false) }

// ToggleCart flips the cart drawer.
func (s *Session) ToggleCart() {
	s.mu.Lock()
	s.cartOpen = !s.cartOpen
	s.mu.Unlock()
	s.notify()
}

// ToggleMenu flips the menu.
func (s *Session) ToggleMenu() {
	s.mu.Lock()
	s.menuOpen = !s.menuOpen
	s.mu.Unlock()
	s.notify()
}

// CloseMenu closes the menu.
func (s *Session) CloseMenu() { s.setFlag(&s.menuOpen, false) }

func (s *Session) setFlag(flag *bool, value bool) {
	s.mu.Lock()
	*flag = value
	s.mu.Unlock()
	s.notify()
}

// Changes signals state commits. The channel is coalescing: readers that lag
// see at most one pending signal.
func (s *Session) Changes() <-chan struct{} {
	return s.changes
}

func (s *Session) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Close marks the session inactive. In-flight fetches resolve into the void.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
