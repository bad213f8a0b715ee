package catalog

import (
	"strings"

	"github.com/RostislavK636/B2B-marketplace/pkg/enums"
)

// classifyRule maps material keywords to a category. Rules are evaluated in
// order and the first match wins, so ordering is part of the contract.
type classifyRule struct {
	keywords []string
	category enums.Category
}

var classifyRules = []classifyRule{
	{keywords: []string{"cardboard", "board"}, category: enums.CategoryBoxes},
	{keywords: []string{"polyethylene"}, category: enums.CategoryFilm},
	{keywords: []string{"polypropylene"}, category: enums.CategoryTape},
	{keywords: []string{"paint", "lacquer"}, category: enums.CategoryPaintCoatings},
	{keywords: []string{"metal", "steel"}, category: enums.CategoryMetal},
	{keywords: []string{"cement", "concrete"}, category: enums.CategoryConstruction},
	{keywords: []string{"insulation"}, category: enums.CategoryInsulation},
}

// Classify maps a free-text material string to a canonical category. It is
// total: every input, including "" and "Unspecified", yields a category.
func Classify(material string) enums.Category {
	needle := strings.ToLower(material)
	for _, rule := range classifyRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(needle, keyword) {
				return rule.category
			}
		}
	}
	return enums.CategoryOther
}
