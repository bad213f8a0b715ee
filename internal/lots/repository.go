package lots

import (
	"context"
	"errors"
	"time"

	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"gorm.io/gorm"
)

// Repository exposes lot persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a lots repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a lot with its product row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Lot, error) {
	var lot models.Lot
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&lot, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "lot not found")
		}
		return nil, err
	}
	return &lot, nil
}

// ListOpen returns lots whose deadline has not passed, nearest deadline first.
func (r *Repository) ListOpen(ctx context.Context) ([]models.Lot, error) {
	var records []models.Lot
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("deadline_at > ?", time.Now()).
		Order("deadline_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
