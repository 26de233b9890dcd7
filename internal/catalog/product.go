package catalog

import (
	"time"

	"github.com/KSunShin4/EcoMart/pkg/enums"
)

// Product is the engine's request-scoped view of a catalog item. Values are
// snapshots converted from storage or remote payloads; the engine never
// mutates them.
type Product struct {
	ID               string
	CategoryID       string
	Name             string
	NameEn           string
	Description      string
	Price            float64
	OriginalPrice    float64
	Discount         int
	Unit             string
	UnitValue        string
	Images           []string
	Thumbnail        string
	Stock            int
	Sold             int
	Rating           float64
	ReviewCount      int
	Origin           string
	Certifications   []string
	Season           enums.Season
	Type             enums.ProductType
	Tags             []string
	IsFeatured       bool
	IsFlashSale      bool
	FlashSaleEndTime *time.Time
	CreatedAt        time.Time
}

// FlashSaleActive reports whether the flash-sale flag should still be shown
// at the given instant. An expired end time deactivates the flag for display
// only; filtering never consults it.
func (p Product) FlashSaleActive(now time.Time) bool {
	if !p.IsFlashSale {
		return false
	}
	if p.FlashSaleEndTime == nil {
		return true
	}
	return p.FlashSaleEndTime.After(now)
}

// Filters narrows a product collection. Nil pointer fields and empty slices
// impose no constraint on their dimension.
type Filters struct {
	CategoryID *string
	MinPrice   *float64
	MaxPrice   *float64
	Types      []enums.ProductType
	Seasons    []enums.Season
	Search     string
}

// Sort orders a product collection by a single field.
type Sort struct {
	Field enums.SortField
	Order enums.SortOrder
}

// Page is a 1-based pagination window request.
type Page struct {
	Page  int
	Limit int
}

// ListResult is one window of a filtered and sorted collection. Total counts
// every match across all pages.
type ListResult struct {
	Products []Product
	Total    int
	Page     int
	Limit    int
	HasMore  bool
}
