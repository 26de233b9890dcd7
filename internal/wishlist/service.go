package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	product "github.com/KSunShin4/EcoMart/internal/products"
	"github.com/KSunShin4/EcoMart/pkg/db"
	"github.com/KSunShin4/EcoMart/pkg/db/models"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
)

// WishlistItemDTO is the API shape of one saved product.
type WishlistItemDTO struct {
	ID        string              `json:"id"`
	ProductID string              `json:"productId"`
	Product   *product.ProductDTO `json:"product,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Service exposes business rules for wishlist management.
type Service interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]WishlistItemDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type wishlistStore interface {
	Create(ctx context.Context, item *models.WishlistItem) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type productLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*product.ProductDTO, error)
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	WishlistRepo wishlistStore
	Products     productLoader
}

type service struct {
	repo     wishlistStore
	products productLoader
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.WishlistRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product loader is required")
	}
	return &service{repo: params.WishlistRepo, products: params.Products}, nil
}

// GetWishlist returns the user's saved products, newest first. Items whose
// product has since disappeared are returned without the embedded product.
func (s *service) GetWishlist(ctx context.Context, userID uuid.UUID) ([]WishlistItemDTO, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing wishlist")
	}

	out := make([]WishlistItemDTO, 0, len(items))
	for _, item := range items {
		dto := WishlistItemDTO{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			CreatedAt: item.CreatedAt,
		}
		if p, err := s.products.GetProduct(ctx, item.ProductID); err == nil {
			dto.Product = p
		}
		out = append(out, dto)
	}
	return out, nil
}

// AddItem saves a product. Adding a product twice is a no-op.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID) error {
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return err
	}

	item := &models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.repo.Create(ctx, item); err != nil {
		if db.IsUniqueViolation(err, "wishlist_items_user_product_key") {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adding wishlist item")
	}
	return nil
}

// RemoveItem deletes a saved product.
func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "wishlist item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing wishlist item")
	}
	return nil
}

// Contains reports whether the product is on the user's wishlist.
func (s *service) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	found, err := s.repo.Exists(ctx, userID, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking wishlist")
	}
	return found, nil
}
