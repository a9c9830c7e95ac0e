package domain

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(names ...string) []Product {
	products := make([]Product, 0, len(names))
	for i, name := range names {
		products = append(products, Product{ID: fmt.Sprintf("p%d", i+1), Name: name})
	}
	return products
}

func TestSelectFeatured_PantryCollectionOrder(t *testing.T) {
	products := catalog("Pancake Mix", "Biscuit Mix", "Gingerbread Mix", "Bread Flour")
	collections := []RawCollection{
		{
			Handle:   "pantry",
			Products: json.RawMessage(`[{"id":"p3"},{"id":"p1"},{"id":"p2"}]`),
		},
	}
	idx := Classify(collections)

	featured := SelectFeatured(products, collections, idx)

	require.Len(t, featured, 3)
	// Collection listing order wins over fetch order.
	assert.Equal(t, "p3", featured[0].ID)
	assert.Equal(t, "p1", featured[1].ID)
	assert.Equal(t, "p2", featured[2].ID)
}

func TestSelectFeatured_UnlistedIDsSortLast(t *testing.T) {
	products := catalog("A", "B", "C")
	// p2 is a pantry member via the index but absent from the listing order.
	collections := []RawCollection{
		{Handle: "pantry", Products: json.RawMessage(`[{"id":"p3"},{"id":"p1"}]`)},
	}
	idx := Classify(collections)
	idx.add(CategoryPantry, "p2")

	featured := SelectFeatured(products, collections, idx)

	require.Len(t, featured, 3)
	assert.Equal(t, []string{"p3", "p1", "p2"}, []string{featured[0].ID, featured[1].ID, featured[2].ID})
}

func TestSelectFeatured_NameFallback(t *testing.T) {
	// No pantry collection: the canonical name list drives selection in its
	// own order, unmatched names excluded.
	products := catalog(
		"Heritage Bread Flour",
		"Old Mill Pancake Mix",
		"Stoneground Polenta",
		"Buckwheat Groats",
		"Apple Cider Cake Donut Mix",
	)

	featured := SelectFeatured(products, nil, make(CategoryIndex))

	require.Len(t, featured, 3)
	assert.Equal(t, "Apple Cider Cake Donut Mix", featured[0].Name)
	assert.Equal(t, "Stoneground Polenta", featured[1].Name)
	assert.Equal(t, "Old Mill Pancake Mix", featured[2].Name)
}

func TestSelectFeatured_FinalFallback(t *testing.T) {
	products := catalog("A", "B", "C", "D")

	featured := SelectFeatured(products, nil, make(CategoryIndex))

	require.Len(t, featured, 3)
	assert.Equal(t, "p1", featured[0].ID)
	assert.Equal(t, "p2", featured[1].ID)
	assert.Equal(t, "p3", featured[2].ID)
}

func TestSelectFeatured_ShortCatalog(t *testing.T) {
	t.Run("fewer than three products", func(t *testing.T) {
		featured := SelectFeatured(catalog("A", "B"), nil, make(CategoryIndex))
		assert.Len(t, featured, 2)
	})

	t.Run("empty catalog", func(t *testing.T) {
		featured := SelectFeatured(nil, nil, make(CategoryIndex))
		assert.Empty(t, featured)
	})
}
