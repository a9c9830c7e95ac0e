package domain

import "encoding/json"

// RawMoney is a gateway currency amount. Amounts arrive as decimal strings.
type RawMoney struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

// RawImage is a gateway image reference.
type RawImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

// RawVariant is a gateway product variant as fetched.
type RawVariant struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Price RawMoney  `json:"price"`
	Image *RawImage `json:"image,omitempty"`
}

// RawProduct is a gateway product record before normalization.
type RawProduct struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ProductType string       `json:"productType"`
	Handle      string       `json:"handle"`
	Images      []RawImage   `json:"images,omitempty"`
	Variants    []RawVariant `json:"variants,omitempty"`
}

// RawCollection is a gateway collection. Products is kept as raw JSON because
// the gateway has shipped three member shapes over time: a plain array, a
// paginated {"models": [...]} wrapper, and an {"edges": [{"node": ...}]} list.
type RawCollection struct {
	ID       string          `json:"id"`
	Handle   string          `json:"handle"`
	Title    string          `json:"title"`
	Products json.RawMessage `json:"products,omitempty"`
}
