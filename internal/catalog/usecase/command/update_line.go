package command

import (
	"context"
	"fmt"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
)

// UpdateLineCommand represents the command to change a cart line quantity.
type UpdateLineCommand struct {
	CartID   string
	LineID   string
	Quantity int
}

// UpdateLineHandler handles the update line command.
type UpdateLineHandler struct {
	gateway domain.Gateway
}

// NewUpdateLineHandler creates a new update line handler.
func NewUpdateLineHandler(gateway domain.Gateway) *UpdateLineHandler {
	return &UpdateLineHandler{gateway: gateway}
}

// Handle proxies the quantity change to the gateway and returns its new cart
// state.
func (h *UpdateLineHandler) Handle(ctx context.Context, cmd UpdateLineCommand) (*domain.Cart, error) {
	if cmd.CartID == "" {
		return nil, fmt.Errorf("cart id is required")
	}
	if cmd.LineID == "" {
		return nil, fmt.Errorf("line id is required")
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	cart, err := h.gateway.UpdateLineItems(ctx, cmd.CartID, []domain.CartLineUpdate{
		{ID: cmd.LineID, Quantity: cmd.Quantity},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update line item: %w", err)
	}

	return cart, nil
}
