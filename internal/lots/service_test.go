package lots

import (
	"context"
	"testing"
	"time"

	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeLotSource struct {
	lots map[int64]*models.Lot
	err  error
}

func (f *fakeLotSource) FindByID(ctx context.Context, id int64) (*models.Lot, error) {
	if f.err != nil {
		return nil, f.err
	}
	lot, ok := f.lots[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "lot not found")
	}
	return lot, nil
}

func (f *fakeLotSource) ListOpen(ctx context.Context) ([]models.Lot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Lot
	for _, lot := range f.lots {
		out = append(out, *lot)
	}
	return out, nil
}

var testClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newLotTestService(lots ...*models.Lot) Service {
	byID := map[int64]*models.Lot{}
	for _, lot := range lots {
		byID[lot.ID] = lot
	}
	return &service{
		source: &fakeLotSource{lots: byID},
		now:    func() time.Time { return testClock },
	}
}

func testLot() *models.Lot {
	return &models.Lot{
		ID:              7,
		ProductID:       3,
		Product:         &models.Product{ID: 3, Name: "Stretch Film Pallet"},
		TotalQuantity:   1000,
		CurrentQuantity: 250,
		PricePerUnit:    decimal.RequireFromString("12.50"),
		MinSharePercent: 5,
		Participants:    4,
		DeadlineAt:      testClock.Add(49 * time.Hour),
	}
}

func TestGetLotComputesDisplayFields(t *testing.T) {
	svc := newLotTestService(testLot())

	dto, err := svc.GetLot(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Stretch Film Pallet", dto.ProductName)
	require.Equal(t, 750, dto.RemainingQuantity)
	require.InDelta(t, 25.0, dto.ProgressPercent, 1e-9)
	require.Equal(t, 2, dto.DaysRemaining)
	require.Equal(t, 1, dto.HoursRemaining)
	require.False(t, dto.Closed)
}

func TestGetLotPastDeadlineIsClamped(t *testing.T) {
	lot := testLot()
	lot.DeadlineAt = testClock.Add(-time.Hour)
	lot.CurrentQuantity = 1200
	svc := newLotTestService(lot)

	dto, err := svc.GetLot(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, dto.Closed)
	require.Zero(t, dto.DaysRemaining)
	require.Zero(t, dto.HoursRemaining)
	require.Zero(t, dto.RemainingQuantity)
	require.InDelta(t, 100.0, dto.ProgressPercent, 1e-9)
}

func TestGetLotNotFound(t *testing.T) {
	svc := newLotTestService()

	_, err := svc.GetLot(context.Background(), 404)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestQuoteShare(t *testing.T) {
	svc := newLotTestService(testLot())
	ctx := context.Background()

	t.Run("exact share", func(t *testing.T) {
		quote, err := svc.QuoteShare(ctx, 7, 25)
		require.NoError(t, err)
		require.Equal(t, 250, quote.UnitCount)
		require.True(t, quote.Total.Equal(decimal.RequireFromString("3125")), "total = %s", quote.Total)
	})

	t.Run("fractional units floor", func(t *testing.T) {
		lot := testLot()
		lot.ID = 8
		lot.TotalQuantity = 105
		svc := newLotTestService(lot)

		quote, err := svc.QuoteShare(ctx, 8, 10)
		require.NoError(t, err)
		require.Equal(t, 10, quote.UnitCount)
		require.True(t, quote.Total.Equal(decimal.RequireFromString("125")), "total = %s", quote.Total)
	})

	t.Run("below minimum share", func(t *testing.T) {
		_, err := svc.QuoteShare(ctx, 7, 4)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		require.Equal(t, pkgerrors.CodeValidation, typed.Code())
	})

	t.Run("over one hundred percent", func(t *testing.T) {
		_, err := svc.QuoteShare(ctx, 7, 101)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		require.Equal(t, pkgerrors.CodeValidation, typed.Code())
	})
}
