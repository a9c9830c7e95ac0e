package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
	"github.com/homesteadmill/storefront/pkg/logger"
)

// EnsureCartHandler makes sure a usable cart exists, resuming the persisted
// one when possible.
type EnsureCartHandler struct {
	gateway  domain.Gateway
	cartRefs domain.CartRefStore
}

// NewEnsureCartHandler creates a new ensure cart handler.
func NewEnsureCartHandler(gateway domain.Gateway, cartRefs domain.CartRefStore) *EnsureCartHandler {
	return &EnsureCartHandler{gateway: gateway, cartRefs: cartRefs}
}

// Handle fetches the persisted cart if a reference exists. A fetch failure is
// recovered transparently by creating a new cart and overwriting the
// persisted reference.
func (h *EnsureCartHandler) Handle(ctx context.Context) (*domain.Cart, error) {
	id, err := h.cartRefs.LoadCartID(ctx)
	if err != nil && !errors.Is(err, domain.ErrCartRefNotFound) {
		logger.Warn(ctx).Err(err).Msg("Failed to read cart reference")
	}

	if id != "" {
		cart, fetchErr := h.gateway.FetchCart(ctx, id)
		if fetchErr == nil {
			return cart, nil
		}
		logger.Warn(ctx).
			Err(fetchErr).
			Str("cart_id", id).
			Msg("Persisted cart unusable, creating a new one")
	}

	cart, err := h.gateway.CreateCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	if err := h.cartRefs.SaveCartID(ctx, cart.ID); err != nil {
		logger.Warn(ctx).Err(err).Str("cart_id", cart.ID).Msg("Failed to persist cart reference")
	}

	return cart, nil
}
