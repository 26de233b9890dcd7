package search

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KSunShin4/EcoMart/pkg/db/models"
)

// Repository persists search history keywords.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create stores one committed keyword.
func (r *Repository) Create(ctx context.Context, entry *models.SearchHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListRecent returns a user's latest keywords, newest first.
func (r *Repository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.SearchHistory, error) {
	var entries []models.SearchHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes one history entry owned by the user.
func (r *Repository) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.SearchHistory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Clear removes every history entry for the user.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.SearchHistory{}).Error
}
