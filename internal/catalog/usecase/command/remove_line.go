package command

import (
	"context"
	"fmt"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
)

// RemoveLineCommand represents the command to remove a cart line.
type RemoveLineCommand struct {
	CartID string
	LineID string
}

// RemoveLineHandler handles the remove line command.
type RemoveLineHandler struct {
	gateway domain.Gateway
}

// NewRemoveLineHandler creates a new remove line handler.
func NewRemoveLineHandler(gateway domain.Gateway) *RemoveLineHandler {
	return &RemoveLineHandler{gateway: gateway}
}

// Handle proxies the removal to the gateway and returns its new cart state.
func (h *RemoveLineHandler) Handle(ctx context.Context, cmd RemoveLineCommand) (*domain.Cart, error) {
	if cmd.CartID == "" {
		return nil, fmt.Errorf("cart id is required")
	}
	if cmd.LineID == "" {
		return nil, fmt.Errorf("line id is required")
	}

	cart, err := h.gateway.RemoveLineItems(ctx, cmd.CartID, []string{cmd.LineID})
	if err != nil {
		return nil, fmt.Errorf("failed to remove line item: %w", err)
	}

	return cart, nil
}
