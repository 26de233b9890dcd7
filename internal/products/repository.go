package product

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KSunShin4/EcoMart/pkg/db/models"
)

// Repository wires together catalog persistence helpers. The remote source
// only supports coarse queries (by category, featured, flash-sale); fine
// filtering happens in the engine after the fetch.
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

// ListByCategory returns the coarse product snapshot for one category, or the
// whole catalog when categoryID is nil.
func (r *Repository) ListByCategory(ctx context.Context, categoryID *uuid.UUID) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListFeatured returns products flagged for the featured rail.
func (r *Repository) ListFeatured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("sold DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListFlashSale returns products flagged for the flash-sale rail.
func (r *Repository) ListFlashSale(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("is_flash_sale = ?", true).
		Order("discount DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories returns browse categories in display order.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListBanners returns active promotional banners in display order.
func (r *Repository) ListBanners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// ListReviews returns a product's reviews, newest first.
func (r *Repository) ListReviews(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
