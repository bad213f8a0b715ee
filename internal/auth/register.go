package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/RostislavK636/B2B-marketplace/internal/sellers"
	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/RostislavK636/B2B-marketplace/pkg/security"
	"gorm.io/gorm"
)

// Register creates a new seller account. Email uniqueness is checked up
// front and again enforced by the unique index inside the transaction.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*sellers.SellerDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.sellers.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking email availability")
	}

	hash, err := security.HashPassword(req.Password, s.password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	var created *models.Seller
	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		record, txErr := s.sellersIn(tx).Create(ctx, sellers.CreateSellerDTO{
			Name:         strings.TrimSpace(req.Name),
			Surname:      strings.TrimSpace(req.Surname),
			Email:        email,
			Phone:        strings.TrimSpace(req.PhoneNumber),
			PasswordHash: hash,
			Company:      req.Company,
			TaxpayerID:   req.TaxpayerID,
		})
		if txErr != nil {
			return txErr
		}
		created = record
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating seller")
	}

	dto := sellers.FromModel(created)
	return &dto, nil
}
