package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// txRunner is the transactional surface of the db client.
type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes seller-scoped product management operations.
type Service interface {
	CreateProduct(ctx context.Context, sellerID int64, input CreateProductInput) (*ProductDTO, error)
	ListProducts(ctx context.Context, sellerID int64) ([]ProductDTO, error)
	DeleteProduct(ctx context.Context, sellerID, productID int64) error
	ClearProducts(ctx context.Context, sellerID int64) (int64, error)
}

// CreateProductInput holds the validated payload to create a listing.
// Rating and review counters always start at zero regardless of input.
type CreateProductInput struct {
	Name                string
	Availability        int
	Description         *string
	DetailedDescription *string
	Details             *DetailsInput
	PriceRanges         []PriceRangeInput
}

// DetailsInput captures the optional physical attributes.
type DetailsInput struct {
	Size                   *string
	Weight                 *string
	MinimumOrderStartsFrom *int
	Material               *string
	Color                  *string
	LoadCapacity           *string
}

// PriceRangeInput defines one wholesale tier.
type PriceRangeInput struct {
	InitialQuantity int
	FinalQuantity   *int
	PricePerRange   decimal.Decimal
}

// service implements the product service.
type service struct {
	repo     *Repository
	dbClient txRunner
}

// NewService constructs a product service instance.
func NewService(repo *Repository, dbClient txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

// CreateProduct creates the listing with details and price tiers in one
// transaction. New listings always start unrated.
func (s *service) CreateProduct(ctx context.Context, sellerID int64, input CreateProductInput) (*ProductDTO, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	record := &models.Product{
		SellerID:            sellerID,
		Name:                strings.TrimSpace(input.Name),
		AverageRating:       0,
		NumberOfReviews:     0,
		Availability:        input.Availability,
		Description:         input.Description,
		DetailedDescription: input.DetailedDescription,
	}

	if details := input.Details; details != nil {
		record.Details = &models.ProductDetails{
			Size:                   details.Size,
			Weight:                 details.Weight,
			MinimumOrderStartsFrom: details.MinimumOrderStartsFrom,
			Material:               details.Material,
			Color:                  details.Color,
			LoadCapacity:           details.LoadCapacity,
		}
	}

	for _, tier := range input.PriceRanges {
		record.PriceRanges = append(record.PriceRanges, models.ProductPriceRange{
			InitialQuantity: tier.InitialQuantity,
			FinalQuantity:   tier.FinalQuantity,
			PricePerRange:   tier.PricePerRange,
		})
	}

	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		_, txErr := s.repo.WithTx(tx).CreateProduct(ctx, record)
		return txErr
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}

	dto := ToProductDTO(*record)
	return &dto, nil
}

// ListProducts returns the seller's own listings.
func (s *service) ListProducts(ctx context.Context, sellerID int64) ([]ProductDTO, error) {
	records, err := s.repo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return ToProductDTOs(records), nil
}

// DeleteProduct removes a listing the seller owns. Deleting a listing owned
// by another seller reports not found rather than forbidden, to avoid
// leaking listing existence across accounts.
func (s *service) DeleteProduct(ctx context.Context, sellerID, productID int64) error {
	if err := s.repo.DeleteBySeller(ctx, sellerID, productID); err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	return nil
}

// ClearProducts wipes the seller's whole inventory. Clearing an empty
// inventory succeeds with a zero count.
func (s *service) ClearProducts(ctx context.Context, sellerID int64) (int64, error) {
	removed, err := s.repo.ClearBySeller(ctx, sellerID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clearing products")
	}
	return removed, nil
}

func validateCreateInput(input CreateProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Availability < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "availability cannot be negative")
	}
	if len(input.PriceRanges) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one price range is required")
	}
	for i, tier := range input.PriceRanges {
		if tier.InitialQuantity < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("price range %d: initialQuantity cannot be negative", i))
		}
		if tier.FinalQuantity != nil && *tier.FinalQuantity < tier.InitialQuantity {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("price range %d: finalQuantity cannot precede initialQuantity", i))
		}
		if tier.PricePerRange.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("price range %d: pricePerRange cannot be negative", i))
		}
	}
	return nil
}
