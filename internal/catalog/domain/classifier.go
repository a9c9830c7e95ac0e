package domain

import (
	"strings"

	"github.com/tidwall/gjson"
)

// CategoryIndex maps a category tag to the set of product IDs known to belong
// to it. A product may appear under multiple tags.
type CategoryIndex map[string]map[string]struct{}

// Has reports whether productID belongs to category.
func (idx CategoryIndex) Has(category, productID string) bool {
	members, ok := idx[category]
	if !ok {
		return false
	}
	_, ok = members[productID]
	return ok
}

// Members returns the member set for category, or nil.
func (idx CategoryIndex) Members(category string) map[string]struct{} {
	return idx[category]
}

func (idx CategoryIndex) add(category, productID string) {
	members, ok := idx[category]
	if !ok {
		members = make(map[string]struct{})
		idx[category] = members
	}
	members[productID] = struct{}{}
}

// Classify builds a category index from raw gateway collections. Malformed or
// missing fields are treated as empty; it never fails. An empty input yields
// an empty index.
func Classify(collections []RawCollection) CategoryIndex {
	idx := make(CategoryIndex)
	for _, c := range collections {
		categories := resolveCategories(c)
		if len(categories) == 0 {
			continue
		}
		members := CollectionMembers(c)
		for _, category := range categories {
			for _, id := range members {
				idx.add(category, id)
			}
		}
	}
	return idx
}

// resolveCategories returns every category whose rule matches the collection,
// in rule declaration order. ID matches and handle/keyword matches are both
// collected, not short-circuited against each other.
func resolveCategories(c RawCollection) []string {
	id := strings.ToLower(c.ID)
	handle := strings.ToLower(c.Handle)
	title := strings.ToLower(c.Title)

	var categories []string
	for _, rule := range CollectionRules {
		if ruleMatches(rule, id, handle, title) {
			categories = append(categories, rule.Category)
		}
	}
	return categories
}

func ruleMatches(rule CollectionRule, id, handle, title string) bool {
	for _, ruleID := range rule.IDs {
		if id != "" && id == strings.ToLower(ruleID) {
			return true
		}
	}
	for _, ruleHandle := range rule.Handles {
		if handle != "" && handle == strings.ToLower(ruleHandle) {
			return true
		}
	}
	for _, keyword := range rule.Keywords {
		kw := strings.ToLower(keyword)
		if handle != "" && strings.Contains(handle, kw) {
			return true
		}
		if title != "" && strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// CollectionMembers extracts member product IDs from a raw collection,
// tolerating all three member shapes the gateway has shipped: a plain array,
// a paginated {"models": [...]} wrapper, and an {"edges": [{"node": ...}]}
// list. Null nodes are skipped.
func CollectionMembers(c RawCollection) []string {
	if len(c.Products) == 0 {
		return nil
	}

	var ids []string
	collect := func(r gjson.Result) {
		switch r.Type {
		case gjson.String:
			if r.Str != "" {
				ids = append(ids, r.Str)
			}
		case gjson.JSON:
			if id := r.Get("id").String(); id != "" {
				ids = append(ids, id)
			}
		}
	}

	v := gjson.ParseBytes(c.Products)
	switch {
	case v.IsArray():
		v.ForEach(func(_, r gjson.Result) bool {
			collect(r)
			return true
		})
	case v.Get("models").IsArray():
		v.Get("models").ForEach(func(_, r gjson.Result) bool {
			collect(r)
			return true
		})
	case v.Get("edges").IsArray():
		v.Get("edges").ForEach(func(_, r gjson.Result) bool {
			collect(r.Get("node"))
			return true
		})
	}
	return ids
}
