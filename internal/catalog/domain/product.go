package domain

// Category tags assigned to products for filtering and merchandising.
const (
	CategoryWheat  = "wheat"
	CategoryRye    = "rye"
	CategoryCorn   = "corn"
	CategoryGoods  = "goods"
	CategoryPantry = "pantry"
	CategoryOther  = "other"
)

// Product is the normalized catalog entity. It is recomputed wholesale on
// every refresh and never mutated in place.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Weight      string    `json:"weight"`
	Category    string    `json:"category"`
	VariantID   string    `json:"variant_id"`
	Handle      string    `json:"handle"`
	Variants    []Variant `json:"variants,omitempty"`
}

// Variant is a purchasable option of a product. Owned exclusively by its
// parent product.
type Variant struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}
