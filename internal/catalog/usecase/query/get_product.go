package query

import (
	"fmt"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
)

// GetProductQuery looks a product up by handle or ID.
type GetProductQuery struct {
	Handle string
}

// GetProductHandler handles the get product query.
type GetProductHandler struct {
	reader CatalogReader
}

// NewGetProductHandler creates a new get product handler.
func NewGetProductHandler(reader CatalogReader) *GetProductHandler {
	return &GetProductHandler{reader: reader}
}

// Handle executes the get product query.
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	if q.Handle == "" {
		return nil, fmt.Errorf("product handle is required")
	}

	for _, p := range h.reader.Products() {
		if p.Handle == q.Handle || p.ID == q.Handle {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("product %q not found", q.Handle)
}
