package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// PlaceholderImageURL is substituted when a product carries no image.
	PlaceholderImageURL = "https://placehold.co/800x800/f4efe6/4a4336?text=Homestead+Mill"

	// gatewayCDNHost marks image URLs that accept rendition parameters.
	gatewayCDNHost = "cdn.shopify.com"

	// PrimaryImageWidth is the rendition width requested for product images.
	PrimaryImageWidth = 800
	// VariantImageWidth is the rendition width for variant thumbnails.
	VariantImageWidth = 600

	defaultWeightLabel = "Standard"
)

// Normalize maps a raw gateway product plus the classifier's collection
// membership index into the internal Product entity. Pure function of its
// inputs.
func Normalize(raw RawProduct, idx CategoryIndex) Product {
	p := Product{
		ID:          raw.ID,
		Name:        raw.Title,
		Description: raw.Description,
		Handle:      raw.Handle,
		Weight:      defaultWeightLabel,
		Category:    resolveCategory(raw, idx),
		Image:       PlaceholderImageURL,
	}

	if len(raw.Images) > 0 && raw.Images[0].URL != "" {
		p.Image = OptimizeImageURL(raw.Images[0].URL, PrimaryImageWidth)
	}

	if len(raw.Variants) > 0 {
		first := raw.Variants[0]
		p.VariantID = first.ID
		p.Price = parseAmount(first.Price.Amount)
		if first.Title != "" {
			p.Weight = first.Title
		}
	}

	for _, rv := range raw.Variants {
		v := Variant{
			ID:    rv.ID,
			Title: rv.Title,
			Price: parseAmount(rv.Price.Amount),
			Image: p.Image,
		}
		if rv.Image != nil && rv.Image.URL != "" {
			v.Image = OptimizeImageURL(rv.Image.URL, VariantImageWidth)
		}
		p.Variants = append(p.Variants, v)
	}

	return p
}

// resolveCategory picks a single category for the product by fixed precedence:
// wheat > goods > corn > rye, then the declared product type run through the
// same rule matchers, then "other".
func resolveCategory(raw RawProduct, idx CategoryIndex) string {
	for _, category := range []string{CategoryWheat, CategoryGoods, CategoryCorn, CategoryRye} {
		if idx.Has(category, raw.ID) {
			return category
		}
	}
	return NormalizeProductType(raw.ProductType)
}

// NormalizeProductType maps a free-form product type string onto a category
// tag using the rule table's handle and keyword matchers. An unmatched
// non-empty type is passed through lowercased; an empty type is "other".
func NormalizeProductType(productType string) string {
	t := strings.ToLower(strings.TrimSpace(productType))
	if t == "" {
		return CategoryOther
	}
	for _, rule := range CollectionRules {
		for _, handle := range rule.Handles {
			if t == strings.ToLower(handle) {
				return rule.Category
			}
		}
		for _, keyword := range rule.Keywords {
			if strings.Contains(t, strings.ToLower(keyword)) {
				return rule.Category
			}
		}
	}
	return t
}

// OptimizeImageURL requests a web-optimized rendition from the gateway CDN by
// appending width and format parameters. Non-CDN URLs pass through unchanged.
func OptimizeImageURL(url string, width int) string {
	if !strings.Contains(url, gatewayCDNHost) {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%swidth=%d&format=webp", url, sep, width)
}

// parseAmount parses a gateway decimal string. Absent, unparseable, or
// negative amounts default to 0.
func parseAmount(amount string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
