package catalog

import "strings"

// genericPlaceholder is returned when no keyword matches. Cosmetic only; the
// sole guarantee is a non-empty reference.
const genericPlaceholder = "/images/catalog/generic.svg"

type imageRule struct {
	keywords []string
	ref      string
}

var imageRules = []imageRule{
	{keywords: []string{"box", "cardboard", "board"}, ref: "/images/catalog/boxes.svg"},
	{keywords: []string{"film", "polyethylene", "stretch"}, ref: "/images/catalog/film.svg"},
	{keywords: []string{"tape", "polypropylene"}, ref: "/images/catalog/tape.svg"},
	{keywords: []string{"paint", "lacquer"}, ref: "/images/catalog/paint.svg"},
	{keywords: []string{"metal", "steel"}, ref: "/images/catalog/metal.svg"},
	{keywords: []string{"cement", "concrete"}, ref: "/images/catalog/construction.svg"},
	{keywords: []string{"insulation"}, ref: "/images/catalog/insulation.svg"},
}

// imageFor picks a placeholder image from keywords in the name or material.
func imageFor(name, material string) string {
	haystack := strings.ToLower(name + " " + material)
	for _, rule := range imageRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(haystack, keyword) {
				return rule.ref
			}
		}
	}
	return genericPlaceholder
}
