package domain

// CollectionRule maps a gateway collection onto an internal category tag.
// Rules are consulted in declaration order; a collection may match more than
// one rule.
type CollectionRule struct {
	Category string
	IDs      []string
	Handles  []string
	Keywords []string
}

// CollectionRules is the central place to manage collection identifiers.
// New collection IDs/handles/keywords added here are picked up everywhere.
var CollectionRules = []CollectionRule{
	{
		Category: CategoryPantry,
		IDs:      []string{"468089635058", "gid://shopify/Collection/468089635058"},
		Handles:  []string{"pantry"},
		Keywords: []string{"pantry"},
	},
	{
		Category: CategoryGoods,
		IDs:      []string{"468122468594", "gid://shopify/Collection/468122468594"},
		Handles:  []string{"goods", "dry-goods", "dry goods", "drygoods"},
		Keywords: []string{"goods", "dry goods", "dry-goods", "drygoods"},
	},
	{
		Category: CategoryWheat,
		Handles:  []string{"wheat"},
		Keywords: []string{"wheat"},
	},
	{
		Category: CategoryCorn,
		Handles:  []string{"corn"},
		Keywords: []string{"corn"},
	},
	{
		Category: CategoryRye,
		Handles:  []string{"rye"},
		Keywords: []string{"rye"},
	},
}

// FallbackPantryNames is merchandising configuration, not logic: the canonical
// names used when the pantry collection is empty or unavailable, in display
// order.
var FallbackPantryNames = []string{
	"Apple Cider Cake Donut Mix",
	"Stoneground Polenta",
	"Homestead Porridge",
	"Gingerbread Mix",
	"Pancake Mix",
	"Biscuit Mix",
}
