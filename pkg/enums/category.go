package enums

import "fmt"

// Category represents the canonical product categories supported by the catalog.
type Category string

const (
	CategoryBoxes         Category = "Boxes"
	CategoryFilm          Category = "Film"
	CategoryTape          Category = "Tape"
	CategoryPaintCoatings Category = "Paint&Coatings"
	CategoryMetal         Category = "Metal"
	CategoryConstruction  Category = "Construction"
	CategoryInsulation    Category = "Insulation"
	CategoryOther         Category = "Other"
)

var validCategories = []Category{
	CategoryBoxes,
	CategoryFilm,
	CategoryTape,
	CategoryPaintCoatings,
	CategoryMetal,
	CategoryConstruction,
	CategoryInsulation,
	CategoryOther,
}

// Categories returns the full enumerated set in declaration order.
func Categories() []Category {
	out := make([]Category, len(validCategories))
	copy(out, validCategories)
	return out
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
