package lots

import (
	"context"
	"fmt"
	"time"

	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/shopspring/decimal"
)

// lotSource is the persistence surface the service needs.
type lotSource interface {
	FindByID(ctx context.Context, id int64) (*models.Lot, error)
	ListOpen(ctx context.Context) ([]models.Lot, error)
}

// Service exposes lot display math. There is no pledge ledger here; the
// service only renders the state of a lot and prices hypothetical shares.
type Service interface {
	GetLot(ctx context.Context, id int64) (*LotDTO, error)
	ListOpenLots(ctx context.Context) ([]LotDTO, error)
	QuoteShare(ctx context.Context, lotID int64, sharePercent int) (*ShareQuoteDTO, error)
}

// LotDTO is a lot plus its computed display fields.
type LotDTO struct {
	ID                int64           `json:"id"`
	ProductID         int64           `json:"productId"`
	ProductName       string          `json:"productName"`
	TotalQuantity     int             `json:"totalQuantity"`
	CurrentQuantity   int             `json:"currentQuantity"`
	RemainingQuantity int             `json:"remainingQuantity"`
	ProgressPercent   float64         `json:"progressPercent"`
	PricePerUnit      decimal.Decimal `json:"pricePerUnit"`
	MinSharePercent   int             `json:"minSharePercent"`
	Participants      int             `json:"participants"`
	DeadlineAt        time.Time       `json:"deadlineAt"`
	DaysRemaining     int             `json:"daysRemaining"`
	HoursRemaining    int             `json:"hoursRemaining"`
	Closed            bool            `json:"closed"`
}

// ShareQuoteDTO prices one hypothetical share of a lot.
type ShareQuoteDTO struct {
	LotID        int64           `json:"lotId"`
	SharePercent int             `json:"sharePercent"`
	UnitCount    int             `json:"unitCount"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Total        decimal.Decimal `json:"total"`
}

type service struct {
	source lotSource
	now    func() time.Time
}

// NewService constructs a lots service instance.
func NewService(source lotSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("lot source required")
	}
	return &service{source: source, now: time.Now}, nil
}

// GetLot loads one lot and computes its display fields.
func (s *service) GetLot(ctx context.Context, id int64) (*LotDTO, error) {
	lot, err := s.source.FindByID(ctx, id)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading lot")
	}
	dto := s.toDTO(lot)
	return &dto, nil
}

// ListOpenLots returns every lot still accepting shares, nearest deadline first.
func (s *service) ListOpenLots(ctx context.Context) ([]LotDTO, error) {
	records, err := s.source.ListOpen(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing lots")
	}
	out := make([]LotDTO, 0, len(records))
	for i := range records {
		out = append(out, s.toDTO(&records[i]))
	}
	return out, nil
}

// QuoteShare prices a share of the lot's total quantity. The unit count is
// floored, so the total never exceeds the exact proportional price.
func (s *service) QuoteShare(ctx context.Context, lotID int64, sharePercent int) (*ShareQuoteDTO, error) {
	lot, err := s.source.FindByID(ctx, lotID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading lot")
	}

	if sharePercent < lot.MinSharePercent {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("share must be at least %d percent", lot.MinSharePercent))
	}
	if sharePercent > 100 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "share cannot exceed 100 percent")
	}

	unitCount := lot.TotalQuantity * sharePercent / 100
	total := lot.PricePerUnit.Mul(decimal.NewFromInt(int64(unitCount)))

	return &ShareQuoteDTO{
		LotID:        lot.ID,
		SharePercent: sharePercent,
		UnitCount:    unitCount,
		PricePerUnit: lot.PricePerUnit,
		Total:        total,
	}, nil
}

func (s *service) toDTO(lot *models.Lot) LotDTO {
	dto := LotDTO{
		ID:              lot.ID,
		ProductID:       lot.ProductID,
		TotalQuantity:   lot.TotalQuantity,
		CurrentQuantity: lot.CurrentQuantity,
		PricePerUnit:    lot.PricePerUnit,
		MinSharePercent: lot.MinSharePercent,
		Participants:    lot.Participants,
		DeadlineAt:      lot.DeadlineAt,
	}
	if lot.Product != nil {
		dto.ProductName = lot.Product.Name
	}

	if remaining := lot.TotalQuantity - lot.CurrentQuantity; remaining > 0 {
		dto.RemainingQuantity = remaining
	}
	if lot.TotalQuantity > 0 {
		progress := float64(lot.CurrentQuantity) / float64(lot.TotalQuantity) * 100
		if progress > 100 {
			progress = 100
		}
		dto.ProgressPercent = progress
	}

	until := lot.DeadlineAt.Sub(s.now())
	if until <= 0 {
		dto.Closed = true
		return dto
	}
	totalHours := int(until.Hours())
	dto.DaysRemaining = totalHours / 24
	dto.HoursRemaining = totalHours % 24
	return dto
}
