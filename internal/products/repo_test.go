package product

import (
	"context"
	"fmt"
	"testing"

	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var productTestDBSeq int

func setupProductTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	productTestDBSeq++
	dsn := fmt.Sprintf("file:products_test_%d?mode=memory&cache=shared", productTestDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Seller{},
		&models.Product{},
		&models.ProductDetails{},
		&models.ProductPriceRange{},
	))
	return db
}

func mustCreateTestSeller(t *testing.T, db *gorm.DB, email string) *models.Seller {
	t.Helper()
	seller := &models.Seller{
		Name:         "Repo",
		Surname:      "Tester",
		Email:        email,
		Phone:        "+10000000000",
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(seller).Error)
	return seller
}

func mustCreateTestProduct(t *testing.T, db *gorm.DB, sellerID int64, name string) *models.Product {
	t.Helper()
	material := "Cardboard"
	final := 499
	record := &models.Product{
		SellerID:     sellerID,
		Name:         name,
		Availability: 1000,
		Details:      &models.ProductDetails{Material: &material},
		PriceRanges: []models.ProductPriceRange{
			{InitialQuantity: 100, FinalQuantity: &final, PricePerRange: decimal.NewFromInt(25)},
			{InitialQuantity: 500, FinalQuantity: nil, PricePerRange: decimal.NewFromInt(18)},
		},
	}
	require.NoError(t, db.Create(record).Error)
	return record
}

func TestRepositoryCreateAndFindByID(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seller := mustCreateTestSeller(t, db, "repo-create@example.com")
	created := mustCreateTestProduct(t, db, seller.ID, "Cardboard Box")

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Cardboard Box", found.Name)
	require.NotNil(t, found.Details)
	require.Equal(t, "Cardboard", *found.Details.Material)
	require.Len(t, found.PriceRanges, 2)
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), 12345)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRepositoryListBySellerScopes(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	owner := mustCreateTestSeller(t, db, "repo-owner@example.com")
	other := mustCreateTestSeller(t, db, "repo-other@example.com")
	mustCreateTestProduct(t, db, owner.ID, "Owner Box")
	mustCreateTestProduct(t, db, other.ID, "Other Box")

	products, err := repo.ListBySeller(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Owner Box", products[0].Name)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestRepositoryClearBySeller(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	owner := mustCreateTestSeller(t, db, "repo-clear@example.com")
	bystander := mustCreateTestSeller(t, db, "repo-bystander@example.com")
	mustCreateTestProduct(t, db, owner.ID, "Box A")
	mustCreateTestProduct(t, db, owner.ID, "Box B")
	kept := mustCreateTestProduct(t, db, bystander.ID, "Kept Box")

	removed, err := repo.ClearBySeller(ctx, owner.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	remaining, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, kept.ID, remaining[0].ID)

	removed, err = repo.ClearBySeller(ctx, owner.ID)
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestRepositoryDeleteBySeller(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	owner := mustCreateTestSeller(t, db, "repo-delete@example.com")
	intruder := mustCreateTestSeller(t, db, "repo-intruder@example.com")
	record := mustCreateTestProduct(t, db, owner.ID, "Victim Box")

	err := repo.DeleteBySeller(ctx, intruder.ID, record.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	require.NoError(t, repo.DeleteBySeller(ctx, owner.ID, record.ID))

	_, err = repo.FindByID(ctx, record.ID)
	require.Error(t, err)
}
