package catalog

import (
	"context"
	"fmt"

	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	"github.com/RostislavK636/B2B-marketplace/pkg/enums"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
)

// productSource is the storage surface the catalog reads listings from.
type productSource interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
}

// Service exposes the public catalog read operations.
type Service interface {
	Browse(ctx context.Context, input BrowseInput) ([]DisplayProduct, error)
	GetProduct(ctx context.Context, id int64) (*ProductDetail, error)
}

// BrowseInput bundles the pipeline inputs for one catalog render.
type BrowseInput struct {
	Criteria FilterCriteria
	SortKey  enums.SortKey
}

// ProductDetail pairs the normalized record with the raw wholesale tiers
// needed by the pricing table on the detail page.
type ProductDetail struct {
	DisplayProduct
	DetailedDescription string       `json:"detailedDescription,omitempty"`
	NumberOfReviews     int          `json:"numberOfReviews"`
	PriceRanges         []PriceRange `json:"productPriceRanges"`
	Details             *RawDetails  `json:"productDetails,omitempty"`
}

type service struct {
	source productSource
}

// NewService constructs a catalog service instance.
func NewService(source productSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("product source required")
	}
	return &service{source: source}, nil
}

// Browse fetches the raw listings fresh and runs the full pipeline:
// normalize, filter, sort. No caching layer sits between calls.
func (s *service) Browse(ctx context.Context, input BrowseInput) ([]DisplayProduct, error) {
	records, err := s.source.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog products")
	}

	raws := make([]RawProduct, 0, len(records))
	for _, record := range records {
		raws = append(raws, FromModel(record))
	}

	display := NormalizeAll(raws)
	display = Filter(display, input.Criteria)
	return Sort(display, input.SortKey), nil
}

// GetProduct returns one normalized listing together with its raw tiers.
func (s *service) GetProduct(ctx context.Context, id int64) (*ProductDetail, error) {
	record, err := s.source.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	raw := FromModel(*record)
	detail := &ProductDetail{
		DisplayProduct:  Normalize(raw),
		NumberOfReviews: record.NumberOfReviews,
		PriceRanges:     raw.PriceRanges,
		Details:         raw.Details,
	}
	if record.DetailedDescription != nil {
		detail.DetailedDescription = *record.DetailedDescription
	}
	return detail, nil
}

// FromModel converts a stored product row into the raw shape the pipeline
// consumes.
func FromModel(record models.Product) RawProduct {
	raw := RawProduct{
		ID:              record.ID,
		Name:            record.Name,
		AverageRating:   record.AverageRating,
		NumberOfReviews: record.NumberOfReviews,
		Availability:    record.Availability,
	}
	if record.Description != nil {
		raw.Description = *record.Description
	}

	for _, tier := range record.PriceRanges {
		price, _ := tier.PricePerRange.Float64()
		raw.PriceRanges = append(raw.PriceRanges, PriceRange{
			InitialQuantity: tier.InitialQuantity,
			FinalQuantity:   tier.FinalQuantity,
			PricePerRange:   price,
		})
	}

	if details := record.Details; details != nil {
		raw.Details = &RawDetails{}
		if details.Size != nil {
			raw.Details.Size = *details.Size
		}
		if details.Weight != nil {
			raw.Details.Weight = *details.Weight
		}
		if details.MinimumOrderStartsFrom != nil {
			raw.Details.MinimumOrderStartsFrom = *details.MinimumOrderStartsFrom
		}
		if details.Material != nil {
			raw.Details.Material = *details.Material
		}
		if details.Color != nil {
			raw.Details.Color = *details.Color
		}
		if details.LoadCapacity != nil {
			raw.Details.LoadCapacity = *details.LoadCapacity
		}
	}
	return raw
}
