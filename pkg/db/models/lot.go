package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot represents a group-buy round over a single product.
type Lot struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID       int64           `gorm:"column:product_id;not null;index"`
	Product         *Product        `gorm:"foreignKey:ProductID"`
	TotalQuantity   int             `gorm:"column:total_quantity;not null"`
	CurrentQuantity int             `gorm:"column:current_quantity;not null;default:0"`
	PricePerUnit    decimal.Decimal `gorm:"column:price_per_unit;type:numeric(12,2);not null"`
	MinSharePercent int             `gorm:"column:min_share_percent;not null;default:1"`
	Participants    int             `gorm:"column:participants;not null;default:0"`
	DeadlineAt      time.Time       `gorm:"column:deadline_at;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
