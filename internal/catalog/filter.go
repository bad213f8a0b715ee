package catalog

import (
	"strings"

	"github.com/RostislavK636/B2B-marketplace/pkg/enums"
)

// Price bucket boundaries are half-open; 100 and 300 belong to the bucket above.
const (
	priceBucketLowMax    = 100
	priceBucketMediumMax = 300
)

// Filter returns the products matching every criteria dimension, preserving
// input order. The input slice is never mutated and an empty result is valid.
func Filter(products []DisplayProduct, criteria FilterCriteria) []DisplayProduct {
	out := make([]DisplayProduct, 0, len(products))
	search := strings.ToLower(criteria.Search)
	for _, product := range products {
		if !matchesSearch(product, search) {
			continue
		}
		if !matchesCategory(product, criteria.Category) {
			continue
		}
		if !matchesMaterial(product, criteria.Material) {
			continue
		}
		if !matchesPriceBucket(product, criteria.PriceBucket) {
			continue
		}
		out = append(out, product)
	}
	return out
}

func matchesSearch(product DisplayProduct, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(product.Name), search)
}

func matchesCategory(product DisplayProduct, category string) bool {
	if skipDimension(category) {
		return true
	}
	return string(product.Category) == category
}

func matchesMaterial(product DisplayProduct, material string) bool {
	if skipDimension(material) {
		return true
	}
	return product.Material == material
}

func matchesPriceBucket(product DisplayProduct, bucket string) bool {
	if skipDimension(bucket) {
		return true
	}
	switch enums.PriceBucket(bucket) {
	case enums.PriceBucketLow:
		return product.Price < priceBucketLowMax
	case enums.PriceBucketMedium:
		return product.Price >= priceBucketLowMax && product.Price < priceBucketMediumMax
	case enums.PriceBucketHigh:
		return product.Price >= priceBucketMediumMax
	default:
		return true
	}
}

func skipDimension(value string) bool {
	return value == "" || value == CriteriaAll
}
