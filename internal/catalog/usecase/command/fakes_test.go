package command

import (
	"context"
	"errors"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
)

// fakeGateway implements domain.Gateway with overridable function fields.
type fakeGateway struct {
	fetchProducts    func(ctx context.Context, pageSize int) ([]domain.RawProduct, error)
	fetchCollections func(ctx context.Context) ([]domain.RawCollection, error)
	createCart       func(ctx context.Context) (*domain.Cart, error)
	fetchCart        func(ctx context.Context, id string) (*domain.Cart, error)
	addLines         func(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error)
	removeLines      func(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
	updateLines      func(ctx context.Context, cartID string, updates []domain.CartLineUpdate) (*domain.Cart, error)
}

var errNotConfigured = errors.New("fake gateway: not configured")

func (g *fakeGateway) FetchAllProducts(ctx context.Context, pageSize int) ([]domain.RawProduct, error) {
	if g.fetchProducts == nil {
		return nil, errNotConfigured
	}
	return g.fetchProducts(ctx, pageSize)
}

func (g *fakeGateway) FetchAllCollections(ctx context.Context) ([]domain.RawCollection, error) {
	if g.fetchCollections == nil {
		return nil, errNotConfigured
	}
	return g.fetchCollections(ctx)
}

func (g *fakeGateway) CreateCart(ctx context.Context) (*domain.Cart, error) {
	if g.createCart == nil {
		return nil, errNotConfigured
	}
	return g.createCart(ctx)
}

func (g *fakeGateway) FetchCart(ctx context.Context, id string) (*domain.Cart, error) {
	if g.fetchCart == nil {
		return nil, errNotConfigured
	}
	return g.fetchCart(ctx, id)
}

func (g *fakeGateway) AddLineItems(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	if g.addLines == nil {
		return nil, errNotConfigured
	}
	return g.addLines(ctx, cartID, lines)
}

func (g *fakeGateway) RemoveLineItems(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	if g.removeLines == nil {
		return nil, errNotConfigured
	}
	return g.removeLines(ctx, cartID, lineIDs)
}

func (g *fakeGateway) UpdateLineItems(ctx context.Context, cartID string, updates []domain.CartLineUpdate) (*domain.Cart, error) {
	if g.updateLines == nil {
		return nil, errNotConfigured
	}
	return g.updateLines(ctx, cartID, updates)
}

// memorySnapshotStore keeps the snapshot in memory.
type memorySnapshotStore struct {
	snap    *domain.Snapshot
	saveErr error
}

func (s *memorySnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	if s.snap == nil {
		return nil, domain.ErrSnapshotNotFound
	}
	return s.snap, nil
}

func (s *memorySnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snap = snap
	return nil
}

// memoryCartRefStore keeps the cart reference in memory.
type memoryCartRefStore struct {
	id string
}

func (s *memoryCartRefStore) LoadCartID(ctx context.Context) (string, error) {
	if s.id == "" {
		return "", domain.ErrCartRefNotFound
	}
	return s.id, nil
}

func (s *memoryCartRefStore) SaveCartID(ctx context.Context, id string) error {
	s.id = id
	return nil
}
