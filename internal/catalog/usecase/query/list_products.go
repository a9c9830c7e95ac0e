package query

import (
	"github.com/homesteadmill/storefront/internal/catalog/domain"
)

// CatalogReader exposes the session's committed catalog state to queries.
type CatalogReader interface {
	Products() []domain.Product
	Collections() []domain.RawCollection
	Index() domain.CategoryIndex
}

// ListProductsQuery represents the query to list catalog products.
type ListProductsQuery struct {
	Category string // Optional: filter by category tag
	Limit    int
	Offset   int
}

// ListProductsHandler handles the list products query.
type ListProductsHandler struct {
	reader CatalogReader
}

// NewListProductsHandler creates a new list products handler.
func NewListProductsHandler(reader CatalogReader) *ListProductsHandler {
	return &ListProductsHandler{reader: reader}
}

// Handle filters the normalized catalog. Category filtering consults the
// multi-valued index first so a product can surface under every collection it
// belongs to, then falls back to the product's own single-valued tag.
func (h *ListProductsHandler) Handle(q ListProductsQuery) []domain.Product {
	all := h.reader.Products()

	var products []domain.Product
	if q.Category == "" {
		products = all
	} else {
		index := h.reader.Index()
		for _, p := range all {
			if index.Has(q.Category, p.ID) || p.Category == q.Category {
				products = append(products, p)
			}
		}
	}

	if q.Offset > 0 {
		if q.Offset >= len(products) {
			return nil
		}
		products = products[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < len(products) {
		products = products[:q.Limit]
	}

	return products
}
