package lots

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	lotTestDBSeq  int
	lotFixtureSeq int
)

func setupLotTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	lotTestDBSeq++
	dsn := fmt.Sprintf("file:lots_test_%d?mode=memory&cache=shared", lotTestDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Seller{},
		&models.Product{},
		&models.ProductDetails{},
		&models.ProductPriceRange{},
		&models.Lot{},
	))
	return db
}

func mustCreateLotFixture(t *testing.T, db *gorm.DB, deadline time.Time) *models.Lot {
	t.Helper()

	lotFixtureSeq++
	seller := &models.Seller{Name: "Lot", Surname: "Owner", Email: fmt.Sprintf("lot-owner-%d@example.com", lotFixtureSeq), Phone: "+70000000000", PasswordHash: "hash"}
	require.NoError(t, db.Create(seller).Error)

	product := &models.Product{SellerID: seller.ID, Name: "Pallet Wrap", Availability: 5000}
	require.NoError(t, db.Create(product).Error)

	lot := &models.Lot{
		ProductID:       product.ID,
		TotalQuantity:   1000,
		CurrentQuantity: 400,
		PricePerUnit:    decimal.RequireFromString("9.90"),
		MinSharePercent: 5,
		Participants:    3,
		DeadlineAt:      deadline,
	}
	require.NoError(t, db.Create(lot).Error)
	return lot
}

func TestRepositoryFindByIDPreloadsProduct(t *testing.T) {
	db := setupLotTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created := mustCreateLotFixture(t, db, time.Now().Add(72*time.Hour))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Product)
	require.Equal(t, "Pallet Wrap", found.Product.Name)
	require.True(t, found.PricePerUnit.Equal(decimal.RequireFromString("9.90")))
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	db := setupLotTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), 9999)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRepositoryListOpenSkipsExpired(t *testing.T) {
	db := setupLotTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	open := mustCreateLotFixture(t, db, time.Now().Add(48*time.Hour))
	mustCreateLotFixture(t, db, time.Now().Add(-time.Hour))

	records, err := repo.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, open.ID, records[0].ID)
}
