package enums

import "fmt"

// SortKey names the orderings the catalog can apply to a product list.
type SortKey string

const (
	SortKeyPopular   SortKey = "popular"
	SortKeyPriceAsc  SortKey = "price-asc"
	SortKeyPriceDesc SortKey = "price-desc"
	SortKeyRating    SortKey = "rating"
)

var validSortKeys = []SortKey{
	SortKeyPopular,
	SortKeyPriceAsc,
	SortKeyPriceDesc,
	SortKeyRating,
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	return string(k)
}

// IsValid reports whether the value matches a known SortKey.
func (k SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
