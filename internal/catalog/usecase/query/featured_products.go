package query

import (
	"github.com/homesteadmill/storefront/internal/catalog/domain"
)

// FeaturedProductsHandler handles the pantry shelf query.
type FeaturedProductsHandler struct {
	reader CatalogReader
}

// NewFeaturedProductsHandler creates a new featured products handler.
func NewFeaturedProductsHandler(reader CatalogReader) *FeaturedProductsHandler {
	return &FeaturedProductsHandler{reader: reader}
}

// Handle returns the handpicked pantry selection.
func (h *FeaturedProductsHandler) Handle() []domain.Product {
	return domain.SelectFeatured(h.reader.Products(), h.reader.Collections(), h.reader.Index())
}
