package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ExplicitIDMatch(t *testing.T) {
	// The explicit ID rule applies even when the handle matches nothing.
	collections := []RawCollection{
		{
			ID:       "468089635058",
			Handle:   "seasonal",
			Products: json.RawMessage(`[{"id":"1"},{"id":"2"}]`),
		},
	}

	idx := Classify(collections)

	assert.True(t, idx.Has(CategoryPantry, "1"))
	assert.True(t, idx.Has(CategoryPantry, "2"))
	assert.False(t, idx.Has(CategoryGoods, "1"))
}

func TestClassify_HandleAndKeywordMatch(t *testing.T) {
	tests := []struct {
		name       string
		collection RawCollection
		category   string
	}{
		{
			name: "handle equality",
			collection: RawCollection{
				ID:       "gid://shopify/Collection/1",
				Handle:   "dry-goods",
				Products: json.RawMessage(`[{"id":"p1"}]`),
			},
			category: CategoryGoods,
		},
		{
			name: "keyword in title",
			collection: RawCollection{
				ID:       "gid://shopify/Collection/2",
				Handle:   "flours",
				Title:    "Heritage Wheat Flours",
				Products: json.RawMessage(`[{"id":"p1"}]`),
			},
			category: CategoryWheat,
		},
		{
			name: "keyword in handle",
			collection: RawCollection{
				ID:       "gid://shopify/Collection/3",
				Handle:   "stone-ground-corn",
				Products: json.RawMessage(`[{"id":"p1"}]`),
			},
			category: CategoryCorn,
		},
		{
			name: "case insensitive",
			collection: RawCollection{
				ID:       "gid://shopify/Collection/4",
				Handle:   "RYE",
				Products: json.RawMessage(`[{"id":"p1"}]`),
			},
			category: CategoryRye,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := Classify([]RawCollection{tt.collection})
			assert.True(t, idx.Has(tt.category, "p1"))
		})
	}
}

func TestClassify_MultipleKeys(t *testing.T) {
	// An explicit pantry ID combined with a goods handle resolves to both.
	collections := []RawCollection{
		{
			ID:       "468089635058",
			Handle:   "dry-goods",
			Products: json.RawMessage(`[{"id":"p1"}]`),
		},
	}

	idx := Classify(collections)

	assert.True(t, idx.Has(CategoryPantry, "p1"))
	assert.True(t, idx.Has(CategoryGoods, "p1"))
}

func TestClassify_Idempotent(t *testing.T) {
	collections := []RawCollection{
		{ID: "468089635058", Handle: "pantry", Products: json.RawMessage(`[{"id":"1"}]`)},
		{Handle: "wheat", Products: json.RawMessage(`[{"id":"2"},{"id":"3"}]`)},
	}

	first := Classify(collections)
	second := Classify(collections)

	require.Equal(t, first, second)
}

func TestClassify_EmptyAndMalformed(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		idx := Classify(nil)
		assert.Empty(t, idx)
	})

	t.Run("no matching rule", func(t *testing.T) {
		idx := Classify([]RawCollection{
			{Handle: "seasonal", Products: json.RawMessage(`[{"id":"1"}]`)},
		})
		assert.Empty(t, idx)
	})

	t.Run("malformed members", func(t *testing.T) {
		idx := Classify([]RawCollection{
			{Handle: "wheat", Products: json.RawMessage(`{"unexpected":true}`)},
		})
		assert.Empty(t, idx.Members(CategoryWheat))
	})

	t.Run("missing fields", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Classify([]RawCollection{{}, {Handle: "wheat"}})
		})
	})
}

func TestCollectionMembers_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		products string
		want     []string
	}{
		{
			name:     "plain array",
			products: `[{"id":"a"},{"id":"b"}]`,
			want:     []string{"a", "b"},
		},
		{
			name:     "array of id strings",
			products: `["a","b"]`,
			want:     []string{"a", "b"},
		},
		{
			name:     "paginated models wrapper",
			products: `{"models":[{"id":"a"},{"id":"b"}],"pagination":{"page":1}}`,
			want:     []string{"a", "b"},
		},
		{
			name:     "edge node list",
			products: `{"edges":[{"node":{"id":"a"}},{"node":{"id":"b"}}]}`,
			want:     []string{"a", "b"},
		},
		{
			name:     "null nodes skipped",
			products: `{"edges":[{"node":{"id":"a"}},{"node":null},{"node":{"id":"c"}}]}`,
			want:     []string{"a", "c"},
		},
		{
			name:     "empty",
			products: ``,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RawCollection{Products: json.RawMessage(tt.products)}
			assert.Equal(t, tt.want, CollectionMembers(c))
		})
	}
}
