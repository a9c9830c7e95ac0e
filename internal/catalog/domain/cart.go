package domain

import "context"

// Cart mirrors the gateway-owned checkout resource. It is referenced locally
// only by its ID and replaced wholesale after every mutation.
type Cart struct {
	ID        string     `json:"id"`
	WebURL    string     `json:"web_url"`
	LineItems []LineItem `json:"line_items"`
}

// LineItem is a cart entry referencing a variant and a quantity.
type LineItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	VariantID string  `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

// Subtotal sums line prices times quantities.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, li := range c.LineItems {
		total += li.Price * float64(li.Quantity)
	}
	return total
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, li := range c.LineItems {
		n += li.Quantity
	}
	return n
}

// CartLineInput adds a variant to a cart.
type CartLineInput struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// CartLineUpdate changes the quantity of an existing line.
type CartLineUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Gateway defines the contract for the remote commerce backend. It is treated
// as ground truth; responses are mirrored, never merged.
type Gateway interface {
	FetchAllProducts(ctx context.Context, pageSize int) ([]RawProduct, error)
	FetchAllCollections(ctx context.Context) ([]RawCollection, error)

	CreateCart(ctx context.Context) (*Cart, error)
	FetchCart(ctx context.Context, id string) (*Cart, error)
	AddLineItems(ctx context.Context, cartID string, lines []CartLineInput) (*Cart, error)
	RemoveLineItems(ctx context.Context, cartID string, lineIDs []string) (*Cart, error)
	UpdateLineItems(ctx context.Context, cartID string, updates []CartLineUpdate) (*Cart, error)
}
