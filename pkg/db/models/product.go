package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a seller listing with its wholesale pricing tiers.
type Product struct {
	ID                  int64               `gorm:"column:id;primaryKey;autoIncrement"`
	SellerID            int64               `gorm:"column:seller_id;not null;index"`
	Name                string              `gorm:"column:name;not null"`
	AverageRating       float64             `gorm:"column:average_rating;type:numeric(3,2);not null;default:0"`
	NumberOfReviews     int                 `gorm:"column:number_of_reviews;not null;default:0"`
	Availability        int                 `gorm:"column:availability;not null;default:0"`
	Description         *string             `gorm:"column:description"`
	DetailedDescription *string             `gorm:"column:detailed_description"`
	Details             *ProductDetails     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	PriceRanges         []ProductPriceRange `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductDetails holds the optional physical attributes shown on the detail page.
type ProductDetails struct {
	ID                     int64   `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID              int64   `gorm:"column:product_id;not null;uniqueIndex"`
	Size                   *string `gorm:"column:size"`
	Weight                 *string `gorm:"column:weight"`
	MinimumOrderStartsFrom *int    `gorm:"column:minimum_order_starts_from"`
	Material               *string `gorm:"column:material"`
	Color                  *string `gorm:"column:color"`
	LoadCapacity           *string `gorm:"column:load_capacity"`
}

// TableName keeps the plural-noun convention used across the schema.
func (ProductDetails) TableName() string {
	return "product_details"
}

// ProductPriceRange is one wholesale quantity interval with its per-unit price.
// FinalQuantity is null for the open-ended top tier.
type ProductPriceRange struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID       int64           `gorm:"column:product_id;not null;index"`
	InitialQuantity int             `gorm:"column:initial_quantity;not null"`
	FinalQuantity   *int            `gorm:"column:final_quantity"`
	PricePerRange   decimal.Decimal `gorm:"column:price_per_range;type:numeric(12,2);not null"`
}
