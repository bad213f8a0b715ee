package catalog

import (
	"sort"

	"github.com/RostislavK636/B2B-marketplace/pkg/enums"
)

// Sort returns a new slice ordered by the given key. The sort is stable, so
// products with equal keys keep their relative order from the input, and the
// input slice is left untouched.
//
// "popular" intentionally shares the rating comparator: the catalog has no
// sales data, so rating is the closest available popularity proxy.
func Sort(products []DisplayProduct, key enums.SortKey) []DisplayProduct {
	out := make([]DisplayProduct, len(products))
	copy(out, products)

	switch key {
	case enums.SortKeyPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case enums.SortKeyPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case enums.SortKeyRating, enums.SortKeyPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}
