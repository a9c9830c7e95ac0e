package domain

import (
	"sort"
	"strings"
)

// featuredSlots is the fixed width of the pantry merchandising shelf.
const featuredSlots = 3

// SelectFeatured picks the products for the handpicked pantry shelf. The
// pantry collection drives the selection and its listing order when present;
// otherwise the canonical name list is used; otherwise the first products in
// fetch order. The result is always at most featuredSlots long and is only
// shorter when the whole catalog is.
func SelectFeatured(products []Product, collections []RawCollection, idx CategoryIndex) []Product {
	selected := pantryPicks(products, collections, idx)
	if len(selected) == 0 {
		selected = namePicks(products)
	}
	if len(selected) == 0 {
		selected = append(selected, products...)
	}
	if len(selected) > featuredSlots {
		selected = selected[:featuredSlots]
	}
	return selected
}

// pantryPicks filters products to the pantry index set, ordered by the pantry
// collection's own listing order. Unlisted IDs sort last, in encountered
// order.
func pantryPicks(products []Product, collections []RawCollection, idx CategoryIndex) []Product {
	members := idx.Members(CategoryPantry)
	if len(members) == 0 {
		return nil
	}

	var selected []Product
	for _, p := range products {
		if _, ok := members[p.ID]; ok {
			selected = append(selected, p)
		}
	}
	if len(selected) == 0 {
		return nil
	}

	rank := pantryListingOrder(collections)
	if len(rank) > 0 {
		sort.SliceStable(selected, func(i, j int) bool {
			return listingRank(rank, selected[i].ID) < listingRank(rank, selected[j].ID)
		})
	}
	return selected
}

// pantryListingOrder returns the native member order of the first collection
// that resolves to the pantry category.
func pantryListingOrder(collections []RawCollection) map[string]int {
	for _, c := range collections {
		for _, category := range resolveCategories(c) {
			if category != CategoryPantry {
				continue
			}
			rank := make(map[string]int)
			for i, id := range CollectionMembers(c) {
				if _, seen := rank[id]; !seen {
					rank[id] = i
				}
			}
			return rank
		}
	}
	return nil
}

func listingRank(rank map[string]int, id string) int {
	if pos, ok := rank[id]; ok {
		return pos
	}
	return len(rank)
}

// namePicks selects products whose names contain one of the canonical pantry
// names, in the canonical list's order. Unmatched names are excluded.
func namePicks(products []Product) []Product {
	var selected []Product
	picked := make(map[string]struct{})
	for _, name := range FallbackPantryNames {
		want := strings.ToLower(name)
		for _, p := range products {
			if _, ok := picked[p.ID]; ok {
				continue
			}
			if strings.Contains(strings.ToLower(p.Name), want) {
				selected = append(selected, p)
				picked[p.ID] = struct{}{}
			}
		}
	}
	return selected
}
