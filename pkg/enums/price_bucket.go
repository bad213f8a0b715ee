package enums

import "fmt"

// PriceBucket segments base prices into the three wholesale display bands.
type PriceBucket string

const (
	PriceBucketLow    PriceBucket = "low"
	PriceBucketMedium PriceBucket = "medium"
	PriceBucketHigh   PriceBucket = "high"
)

var validPriceBuckets = []PriceBucket{
	PriceBucketLow,
	PriceBucketMedium,
	PriceBucketHigh,
}

// String implements fmt.Stringer.
func (b PriceBucket) String() string {
	return string(b)
}

// IsValid reports whether the value matches a known PriceBucket.
func (b PriceBucket) IsValid() bool {
	for _, candidate := range validPriceBuckets {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParsePriceBucket converts raw input into a PriceBucket.
func ParsePriceBucket(value string) (PriceBucket, error) {
	for _, candidate := range validPriceBuckets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid price bucket %q", value)
}
