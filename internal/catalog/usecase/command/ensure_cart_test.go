package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
)

func TestEnsureCart_ResumesPersistedCart(t *testing.T) {
	gateway := &fakeGateway{
		fetchCart: func(ctx context.Context, id string) (*domain.Cart, error) {
			assert.Equal(t, "cart-1", id)
			return &domain.Cart{ID: "cart-1"}, nil
		},
	}
	refs := &memoryCartRefStore{id: "cart-1"}

	handler := NewEnsureCartHandler(gateway, refs)
	cart, err := handler.Handle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "cart-1", cart.ID)
	assert.Equal(t, "cart-1", refs.id)
}

func TestEnsureCart_RecoversFromStaleReference(t *testing.T) {
	gateway := &fakeGateway{
		fetchCart: func(ctx context.Context, id string) (*domain.Cart, error) {
			return nil, errors.New("cart expired")
		},
		createCart: func(ctx context.Context) (*domain.Cart, error) {
			return &domain.Cart{ID: "cart-2"}, nil
		},
	}
	refs := &memoryCartRefStore{id: "stale-id"}

	handler := NewEnsureCartHandler(gateway, refs)
	cart, err := handler.Handle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "cart-2", cart.ID)
	// The stale reference is replaced in persisted storage.
	assert.Equal(t, "cart-2", refs.id)
}

func TestEnsureCart_CreatesWhenNoReference(t *testing.T) {
	created := 0
	gateway := &fakeGateway{
		createCart: func(ctx context.Context) (*domain.Cart, error) {
			created++
			return &domain.Cart{ID: "cart-3"}, nil
		},
	}
	refs := &memoryCartRefStore{}

	handler := NewEnsureCartHandler(gateway, refs)
	cart, err := handler.Handle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, "cart-3", cart.ID)
	assert.Equal(t, "cart-3", refs.id)
}

func TestEnsureCart_CreateFailure(t *testing.T) {
	gateway := &fakeGateway{
		createCart: func(ctx context.Context) (*domain.Cart, error) {
			return nil, errors.New("gateway down")
		},
	}
	refs := &memoryCartRefStore{}

	handler := NewEnsureCartHandler(gateway, refs)
	_, err := handler.Handle(context.Background())

	require.Error(t, err)
	assert.Empty(t, refs.id)
}
