package command

import (
	"context"
	"fmt"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
)

// AddLineCommand represents the command to add a variant to the cart.
type AddLineCommand struct {
	CartID    string
	VariantID string
	Quantity  int
}

// AddLineHandler handles the add line command.
type AddLineHandler struct {
	gateway domain.Gateway
}

// NewAddLineHandler creates a new add line handler.
func NewAddLineHandler(gateway domain.Gateway) *AddLineHandler {
	return &AddLineHandler{gateway: gateway}
}

// Handle proxies the mutation to the gateway and returns its new cart state.
// There is no optimistic update: a failure leaves the caller's mirrored cart
// untouched.
func (h *AddLineHandler) Handle(ctx context.Context, cmd AddLineCommand) (*domain.Cart, error) {
	if cmd.CartID == "" {
		return nil, fmt.Errorf("cart id is required")
	}
	if cmd.VariantID == "" {
		return nil, fmt.Errorf("variant id is required")
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	cart, err := h.gateway.AddLineItems(ctx, cmd.CartID, []domain.CartLineInput{
		{VariantID: cmd.VariantID, Quantity: cmd.Quantity},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add line item: %w", err)
	}

	return cart, nil
}
