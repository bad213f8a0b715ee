package models

import "time"

// Seller represents the canonical marketplace identity entity.
type Seller struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;not null"`
	Surname      string    `gorm:"column:surname;not null"`
	Email        string    `gorm:"column:email;type:text;not null;uniqueIndex"`
	Phone        string    `gorm:"column:phone;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Company      *string   `gorm:"column:company"`
	TaxpayerID   *string   `gorm:"column:taxpayer_id"`
	Products     []Product `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
