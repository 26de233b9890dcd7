package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KSunShin4/EcoMart/internal/catalog"
	"github.com/KSunShin4/EcoMart/pkg/db/models"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
	"github.com/KSunShin4/EcoMart/pkg/pagination"
)

// Service exposes storefront catalog read operations.
type Service interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListDTO, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	ListFeatured(ctx context.Context) ([]ProductDTO, error)
	ListFlashSale(ctx context.Context) ([]ProductDTO, error)
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	ListBanners(ctx context.Context) ([]BannerDTO, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]ReviewDTO, error)
}

// ListProductsInput captures the query knobs the storefront can combine.
type ListProductsInput struct {
	Filters    catalog.Filters
	Sort       catalog.Sort
	Pagination pagination.Params
}

type catalogSource interface {
	ListByCategory(ctx context.Context, categoryID *uuid.UUID) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListFeatured(ctx context.Context) ([]models.Product, error)
	ListFlashSale(ctx context.Context) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBanners(ctx context.Context) ([]models.Banner, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
}

type service struct {
	source catalogSource
}

// NewService constructs a catalog service instance.
func NewService(source catalogSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("catalog source required")
	}
	return &service{source: source}, nil
}

// ListProducts fetches a coarse snapshot from the source and runs the full
// engine pipeline over it. Only the category dimension is pushed down; the
// source cannot evaluate the remaining filters.
func (s *service) ListProducts(ctx context.Context, input ListProductsInput) (*ProductListDTO, error) {
	var coarseCategory *uuid.UUID
	if input.Filters.CategoryID != nil {
		if id, err := uuid.Parse(*input.Filters.CategoryID); err == nil {
			coarseCategory = &id
		}
	}

	rows, err := s.source.ListByCategory(ctx, coarseCategory)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching catalog snapshot")
	}

	params := pagination.Normalize(input.Pagination)
	result := catalog.Query(toCatalogProducts(rows), input.Filters, input.Sort, catalog.Page{
		Page:  params.Page,
		Limit: params.Limit,
	})

	return &ProductListDTO{
		Products: toProductDTOs(result.Products),
		Total:    result.Total,
		Page:     result.Page,
		Limit:    result.Limit,
		HasMore:  result.HasMore,
	}, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	row, err := s.source.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}

	dto := toProductDTO(toCatalogProduct(*row))
	return &dto, nil
}

func (s *service) ListFeatured(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.source.ListFeatured(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing featured products")
	}
	return toProductDTOs(toCatalogProducts(rows)), nil
}

// ListFlashSale keeps only sales that are still running. Entries without an
// end time never reach the rail.
func (s *service) ListFlashSale(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.source.ListFlashSale(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing flash sale products")
	}

	now := time.Now()
	active := make([]catalog.Product, 0, len(rows))
	for _, p := range toCatalogProducts(rows) {
		if p.FlashSaleEndTime == nil || !p.FlashSaleEndTime.After(now) {
			continue
		}
		active = append(active, p)
	}
	return toProductDTOs(active), nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.source.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing categories")
	}

	out := make([]CategoryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCategoryDTO(row))
	}
	return out, nil
}

func (s *service) ListBanners(ctx context.Context) ([]BannerDTO, error) {
	rows, err := s.source.ListBanners(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing banners")
	}

	out := make([]BannerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBannerDTO(row))
	}
	return out, nil
}

func (s *service) ListReviews(ctx context.Context, productID uuid.UUID) ([]ReviewDTO, error) {
	rows, err := s.source.ListReviews(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing reviews")
	}

	out := make([]ReviewDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReviewDTO(row))
	}
	return out, nil
}
