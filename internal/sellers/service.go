package sellers

import (
	"context"
	"fmt"

	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/RostislavK636/B2B-marketplace/pkg/pagination"
	"gorm.io/gorm"
)

// Service exposes read operations over seller accounts.
type Service interface {
	GetSeller(ctx context.Context, id int64) (*SellerDTO, error)
	ListSellers(ctx context.Context, params pagination.Params) (*SellerPage, error)
}

// SellerPage is one page of the seller directory.
type SellerPage struct {
	Sellers    []SellerDTO `json:"sellers"`
	NextCursor *string     `json:"nextCursor,omitempty"`
}

type service struct {
	repo *Repository
}

// NewService constructs a sellers service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sellers repository required")
	}
	return &service{repo: repo}, nil
}

// GetSeller loads one seller profile by identifier.
func (s *service) GetSeller(ctx context.Context, id int64) (*SellerDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading seller")
	}
	dto := FromModel(record)
	return &dto, nil
}

// ListSellers returns one directory page in stable registration order.
func (s *service) ListSellers(ctx context.Context, params pagination.Params) (*SellerPage, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	records, err := s.repo.List(ctx, cursor, limit+1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing sellers")
	}

	page := &SellerPage{}
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		page.NextCursor = &next
	}
	page.Sellers = FromModels(records)
	return page, nil
}
