package sellers

import (
	"strings"

	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
)

// SellerDTO is the wire shape of a seller account. The password hash never
// leaves the persistence layer.
type SellerDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Surname     string  `json:"surname"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Company     *string `json:"company,omitempty"`
	TaxpayerID  *string `json:"taxpayerId,omitempty"`
}

// CreateSellerDTO carries the persisted fields for a new account.
type CreateSellerDTO struct {
	Name         string
	Surname      string
	Email        string
	Phone        string
	PasswordHash string
	Company      *string
	TaxpayerID   *string
}

// ToModel maps the DTO onto the storage model, lowercasing the email.
func (dto CreateSellerDTO) ToModel() *models.Seller {
	return &models.Seller{
		Name:         dto.Name,
		Surname:      dto.Surname,
		Email:        strings.ToLower(strings.TrimSpace(dto.Email)),
		Phone:        dto.Phone,
		PasswordHash: dto.PasswordHash,
		Company:      dto.Company,
		TaxpayerID:   dto.TaxpayerID,
	}
}

// FromModel maps the storage model to its wire shape.
func FromModel(seller *models.Seller) SellerDTO {
	return SellerDTO{
		ID:          seller.ID,
		Name:        seller.Name,
		Surname:     seller.Surname,
		Email:       seller.Email,
		PhoneNumber: seller.Phone,
		Company:     seller.Company,
		TaxpayerID:  seller.TaxpayerID,
	}
}

// FromModels maps a list of rows, preserving order.
func FromModels(records []models.Seller) []SellerDTO {
	out := make([]SellerDTO, 0, len(records))
	for i := range records {
		out = append(out, FromModel(&records[i]))
	}
	return out
}
