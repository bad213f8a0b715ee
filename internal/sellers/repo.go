package sellers

import (
	"context"
	"strings"

	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	"github.com/RostislavK636/B2B-marketplace/pkg/pagination"
	"gorm.io/gorm"
)

// Repository exposes seller persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a sellers repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a new seller and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateSellerDTO) (*models.Seller, error) {
	seller := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(seller).Error; err != nil {
		return nil, err
	}
	return seller, nil
}

// FindByEmail retrieves the seller matching the provided email, case-insensitively.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	needle := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("lower(email) = ?", needle).First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

// FindByID loads a seller by their identifier.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).First(&seller, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

// List returns sellers after the cursor position in stable creation order.
// Callers pass a buffered limit to detect whether another page exists.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Seller, error) {
	query := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Limit(limit)
	if cursor != nil {
		query = query.Where(
			"created_at > ? OR (created_at = ? AND id > ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var records []models.Seller
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
