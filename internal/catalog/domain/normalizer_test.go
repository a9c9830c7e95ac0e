package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func index(entries map[string][]string) CategoryIndex {
	idx := make(CategoryIndex)
	for category, ids := range entries {
		for _, id := range ids {
			idx.add(category, id)
		}
	}
	return idx
}

func TestNormalize_Price(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   float64
	}{
		{"decimal string", "12.50", 12.5},
		{"integer string", "8", 8},
		{"empty", "", 0},
		{"unparseable", "abc", 0},
		{"negative clamps to zero", "-3.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := RawProduct{
				ID:       "p1",
				Variants: []RawVariant{{ID: "v1", Price: RawMoney{Amount: tt.amount}}},
			}
			p := Normalize(raw, make(CategoryIndex))
			assert.Equal(t, tt.want, p.Price)
		})
	}
}

func TestNormalize_NoVariants(t *testing.T) {
	p := Normalize(RawProduct{ID: "p1", Title: "Bare"}, make(CategoryIndex))

	assert.Zero(t, p.Price)
	assert.Empty(t, p.VariantID)
	assert.Equal(t, "Standard", p.Weight)
	assert.Empty(t, p.Variants)
}

func TestNormalize_CategoryPrecedence(t *testing.T) {
	raw := RawProduct{ID: "p1", ProductType: "Rye Flour"}

	t.Run("wheat beats rye", func(t *testing.T) {
		idx := index(map[string][]string{
			CategoryWheat: {"p1"},
			CategoryRye:   {"p1"},
		})
		assert.Equal(t, CategoryWheat, Normalize(raw, idx).Category)
	})

	t.Run("goods beats corn", func(t *testing.T) {
		idx := index(map[string][]string{
			CategoryGoods: {"p1"},
			CategoryCorn:  {"p1"},
		})
		assert.Equal(t, CategoryGoods, Normalize(raw, idx).Category)
	})

	t.Run("pantry membership does not drive the category field", func(t *testing.T) {
		idx := index(map[string][]string{CategoryPantry: {"p1"}})
		assert.Equal(t, CategoryRye, Normalize(raw, idx).Category)
	})
}

func TestNormalize_ProductTypeFallback(t *testing.T) {
	tests := []struct {
		name        string
		productType string
		want        string
	}{
		{"keyword match", "Wheat Flour", CategoryWheat},
		{"handle match", "dry-goods", CategoryGoods},
		{"unmatched passes through lowercased", "Specialty", "specialty"},
		{"empty is other", "", CategoryOther},
		{"whitespace is other", "   ", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(RawProduct{ID: "p1", ProductType: tt.productType}, make(CategoryIndex))
			assert.Equal(t, tt.want, p.Category)
		})
	}
}

func TestNormalize_Images(t *testing.T) {
	t.Run("CDN URL gets rendition parameters", func(t *testing.T) {
		raw := RawProduct{
			ID:     "p1",
			Images: []RawImage{{URL: "https://cdn.shopify.com/s/files/1/flour.jpg"}},
		}
		p := Normalize(raw, make(CategoryIndex))

		assert.Contains(t, p.Image, "width=800")
		assert.Contains(t, p.Image, "format=webp")
	})

	t.Run("CDN URL with existing query", func(t *testing.T) {
		got := OptimizeImageURL("https://cdn.shopify.com/s/files/1/flour.jpg?v=2", 800)
		assert.Equal(t, "https://cdn.shopify.com/s/files/1/flour.jpg?v=2&width=800&format=webp", got)
	})

	t.Run("non-CDN URL passes through unchanged", func(t *testing.T) {
		url := "https://images.example.com/flour.jpg"
		raw := RawProduct{ID: "p1", Images: []RawImage{{URL: url}}}
		p := Normalize(raw, make(CategoryIndex))

		assert.Equal(t, url, p.Image)
	})

	t.Run("missing image falls back to placeholder", func(t *testing.T) {
		p := Normalize(RawProduct{ID: "p1"}, make(CategoryIndex))
		assert.Equal(t, PlaceholderImageURL, p.Image)
	})
}

func TestNormalize_Variants(t *testing.T) {
	raw := RawProduct{
		ID:     "p1",
		Title:  "Stoneground Polenta",
		Images: []RawImage{{URL: "https://cdn.shopify.com/s/files/1/polenta.jpg"}},
		Variants: []RawVariant{
			{ID: "v1", Title: "2 lb", Price: RawMoney{Amount: "9.00"}},
			{
				ID:    "v2",
				Title: "10 lb",
				Price: RawMoney{Amount: "32.00"},
				Image: &RawImage{URL: "https://cdn.shopify.com/s/files/1/polenta-bulk.jpg"},
			},
		},
	}

	p := Normalize(raw, make(CategoryIndex))

	require.Len(t, p.Variants, 2)

	// Cart-line variant id and weight label come from the first variant.
	assert.Equal(t, "v1", p.VariantID)
	assert.Equal(t, "2 lb", p.Weight)
	assert.Equal(t, 9.0, p.Price)

	// A variant without its own image inherits the primary.
	assert.Equal(t, p.Image, p.Variants[0].Image)

	// A variant with an image gets the thumbnail rendition.
	assert.Contains(t, p.Variants[1].Image, "polenta-bulk.jpg")
	assert.Contains(t, p.Variants[1].Image, "width=600")
}
