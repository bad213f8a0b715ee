package product

import (
	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductDTO is the wire shape of a seller listing.
type ProductDTO struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	AverageRating       float64         `json:"averageRating"`
	NumberOfReviews     int             `json:"numberOfReviews"`
	Availability        int             `json:"availability"`
	Description         *string         `json:"description,omitempty"`
	DetailedDescription *string         `json:"detailedDescription,omitempty"`
	Details             *DetailsDTO     `json:"productDetails,omitempty"`
	PriceRanges         []PriceRangeDTO `json:"productPriceRanges"`
}

// DetailsDTO carries the optional physical attributes.
type DetailsDTO struct {
	Size                   *string `json:"size,omitempty"`
	Weight                 *string `json:"weight,omitempty"`
	MinimumOrderStartsFrom *int    `json:"minimumOrderStartsFrom,omitempty"`
	Material               *string `json:"material,omitempty"`
	Color                  *string `json:"color,omitempty"`
	LoadCapacity           *string `json:"loadCapacity,omitempty"`
}

// PriceRangeDTO is one wholesale tier; FinalQuantity is null for the open top tier.
type PriceRangeDTO struct {
	InitialQuantity int             `json:"initialQuantity"`
	FinalQuantity   *int            `json:"finalQuantity"`
	PricePerRange   decimal.Decimal `json:"pricePerRange"`
}

// ToProductDTO maps the stored row to its wire shape.
func ToProductDTO(record models.Product) ProductDTO {
	dto := ProductDTO{
		ID:                  record.ID,
		Name:                record.Name,
		AverageRating:       record.AverageRating,
		NumberOfReviews:     record.NumberOfReviews,
		Availability:        record.Availability,
		Description:         record.Description,
		DetailedDescription: record.DetailedDescription,
		PriceRanges:         make([]PriceRangeDTO, 0, len(record.PriceRanges)),
	}

	if details := record.Details; details != nil {
		dto.Details = &DetailsDTO{
			Size:                   details.Size,
			Weight:                 details.Weight,
			MinimumOrderStartsFrom: details.MinimumOrderStartsFrom,
			Material:               details.Material,
			Color:                  details.Color,
			LoadCapacity:           details.LoadCapacity,
		}
	}

	for _, tier := range record.PriceRanges {
		dto.PriceRanges = append(dto.PriceRanges, PriceRangeDTO{
			InitialQuantity: tier.InitialQuantity,
			FinalQuantity:   tier.FinalQuantity,
			PricePerRange:   tier.PricePerRange,
		})
	}
	return dto
}

// ToProductDTOs maps a list of rows, preserving order.
func ToProductDTOs(records []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(records))
	for _, record := range records {
		out = append(out, ToProductDTO(record))
	}
	return out
}
