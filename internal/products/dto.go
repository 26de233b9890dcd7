package product

import (
	"time"

	"github.com/KSunShin4/EcoMart/internal/catalog"
	"github.com/KSunShin4/EcoMart/pkg/db/models"
)

// ProductDTO is the API shape of a catalog item.
type ProductDTO struct {
	ID               string     `json:"id"`
	CategoryID       string     `json:"categoryId"`
	Name             string     `json:"name"`
	NameEn           string     `json:"nameEn"`
	Description      string     `json:"description,omitempty"`
	Price            float64    `json:"price"`
	OriginalPrice    float64    `json:"originalPrice"`
	Discount         int        `json:"discount"`
	Unit             string     `json:"unit"`
	UnitValue        string     `json:"unitValue,omitempty"`
	Images           []string   `json:"images"`
	Thumbnail        string     `json:"thumbnail"`
	Stock            int        `json:"stock"`
	Sold             int        `json:"sold"`
	Rating           float64    `json:"rating"`
	ReviewCount      int        `json:"reviewCount"`
	Origin           string     `json:"origin,omitempty"`
	Certifications   []string   `json:"certifications"`
	Season           string     `json:"season"`
	Type             string     `json:"type"`
	Tags             []string   `json:"tags"`
	IsFeatured       bool       `json:"isFeatured"`
	IsFlashSale      bool       `json:"isFlashSale"`
	FlashSaleEndTime *time.Time `json:"flashSaleEndTime,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// ProductListDTO is one paginated window of the catalog.
type ProductListDTO struct {
	Products []ProductDTO `json:"products"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	Limit    int          `json:"limit"`
	HasMore  bool         `json:"hasMore"`
}

// CategoryDTO is the API shape of a browse category.
type CategoryDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	NameEn       string  `json:"nameEn"`
	Icon         string  `json:"icon,omitempty"`
	Image        string  `json:"image,omitempty"`
	ProductCount int     `json:"productCount"`
	Badge        *string `json:"badge,omitempty"`
	SortOrder    int     `json:"sortOrder"`
}

// BannerDTO is the API shape of a home-screen banner.
type BannerDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	Image     string `json:"image,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Link      string `json:"link,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

// ReviewDTO is the API shape of a product review.
type ReviewDTO struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	Images     []string  `json:"images"`
	Helpful    int       `json:"helpful"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCatalogProduct(m models.Product) catalog.Product {
	return catalog.Product{
		ID:               m.ID.String(),
		CategoryID:       m.CategoryID.String(),
		Name:             m.Name,
		NameEn:           m.NameEn,
		Description:      m.Description,
		Price:            float64(m.Price),
		OriginalPrice:    float64(m.OriginalPrice),
		Discount:         m.Discount,
		Unit:             m.Unit,
		UnitValue:        m.UnitValue,
		Images:           []string(m.Images),
		Thumbnail:        m.Thumbnail,
		Stock:            m.Stock,
		Sold:             m.Sold,
		Rating:           m.Rating,
		ReviewCount:      m.ReviewCount,
		Origin:           m.Origin,
		Certifications:   []string(m.Certifications),
		Season:           m.Season,
		Type:             m.Type,
		Tags:             []string(m.Tags),
		IsFeatured:       m.IsFeatured,
		IsFlashSale:      m.IsFlashSale,
		FlashSaleEndTime: m.FlashSaleEndTime,
		CreatedAt:        m.CreatedAt,
	}
}

func toCatalogProducts(rows []models.Product) []catalog.Product {
	out := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCatalogProduct(row))
	}
	return out
}

func toProductDTO(p catalog.Product) ProductDTO {
	return ProductDTO{
		ID:               p.ID,
		CategoryID:       p.CategoryID,
		Name:             p.Name,
		NameEn:           p.NameEn,
		Description:      p.Description,
		Price:            p.Price,
		OriginalPrice:    p.OriginalPrice,
		Discount:         p.Discount,
		Unit:             p.Unit,
		UnitValue:        p.UnitValue,
		Images:           emptyIfNil(p.Images),
		Thumbnail:        p.Thumbnail,
		Stock:            p.Stock,
		Sold:             p.Sold,
		Rating:           p.Rating,
		ReviewCount:      p.ReviewCount,
		Origin:           p.Origin,
		Certifications:   emptyIfNil(p.Certifications),
		Season:           p.Season.String(),
		Type:             p.Type.String(),
		Tags:             emptyIfNil(p.Tags),
		IsFeatured:       p.IsFeatured,
		IsFlashSale:      p.IsFlashSale,
		FlashSaleEndTime: p.FlashSaleEndTime,
		CreatedAt:        p.CreatedAt,
	}
}

func toProductDTOs(products []catalog.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

func toCategoryDTO(m models.Category) CategoryDTO {
	return CategoryDTO{
		ID:           m.ID.String(),
		Name:         m.Name,
		NameEn:       m.NameEn,
		Icon:         m.Icon,
		Image:        m.Image,
		ProductCount: m.ProductCount,
		Badge:        m.Badge,
		SortOrder:    m.SortOrder,
	}
}

func toBannerDTO(m models.Banner) BannerDTO {
	return BannerDTO{
		ID:        m.ID.String(),
		Title:     m.Title,
		Subtitle:  m.Subtitle,
		Image:     m.Image,
		Kind:      m.Kind,
		Link:      m.Link,
		SortOrder: m.SortOrder,
	}
}

func toReviewDTO(m models.Review) ReviewDTO {
	return ReviewDTO{
		ID:         m.ID.String(),
		ProductID:  m.ProductID.String(),
		UserName:   m.UserName,
		UserAvatar: m.UserAvatar,
		Rating:     m.Rating,
		Comment:    m.Comment,
		Images:     emptyIfNil([]string(m.Images)),
		Helpful:    m.Helpful,
		CreatedAt:  m.CreatedAt,
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
