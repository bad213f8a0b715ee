package catalog

import (
	"github.com/RostislavK636/B2B-marketplace/pkg/enums"
)

// CriteriaAll disables an individual filter dimension.
const CriteriaAll = "all"

// RawProduct is the backend listing shape the pipeline consumes. Optional
// nested fields may be absent; the Normalizer degrades them to defaults.
type RawProduct struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	AverageRating   float64      `json:"averageRating"`
	NumberOfReviews int          `json:"numberOfReviews"`
	Availability    int          `json:"availability"`
	Description     string       `json:"description"`
	PriceRanges     []PriceRange `json:"productPriceRanges"`
	Details         *RawDetails  `json:"productDetails"`
}

// PriceRange is one wholesale quantity interval with its per-unit price.
type PriceRange struct {
	InitialQuantity int     `json:"initialQuantity"`
	FinalQuantity   *int    `json:"finalQuantity"`
	PricePerRange   float64 `json:"pricePerRange"`
}

// RawDetails carries the optional physical attributes of a listing.
type RawDetails struct {
	Size                   string `json:"size,omitempty"`
	Weight                 string `json:"weight,omitempty"`
	MinimumOrderStartsFrom int    `json:"minimumOrderStartsFrom,omitempty"`
	Material               string `json:"material,omitempty"`
	Color                  string `json:"color,omitempty"`
	LoadCapacity           string `json:"loadCapacity,omitempty"`
}

// DisplayProduct is the canonical record the filter and sort engines operate
// on. It is recomputed from RawProduct on every fetch and never persisted.
type DisplayProduct struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Price        float64        `json:"price"`
	Category     enums.Category `json:"category"`
	Material     string         `json:"material"`
	Image        string         `json:"image"`
	Rating       float64        `json:"rating"`
	Availability int            `json:"availability"`
	Description  string         `json:"description"`
}

// FilterCriteria holds the four independent predicates combined with AND.
// Category, Material, and PriceBucket accept CriteriaAll (or empty) to skip
// that dimension.
type FilterCriteria struct {
	Search      string
	Category    string
	Material    string
	PriceBucket string
}
