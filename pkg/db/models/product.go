package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/KSunShin4/EcoMart/pkg/enums"
)

// Product represents a catalog listing as stored in Postgres.
type Product struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID       uuid.UUID         `gorm:"column:category_id;type:uuid;not null;index:products_category_id_idx"`
	Name             string            `gorm:"column:name;not null"`
	NameEn           string            `gorm:"column:name_en;not null"`
	Description      string            `gorm:"column:description"`
	Price            int64             `gorm:"column:price;not null"`
	OriginalPrice    int64             `gorm:"column:original_price;not null"`
	Discount         int               `gorm:"column:discount;not null;default:0"`
	Unit             string            `gorm:"column:unit;not null"`
	UnitValue        string            `gorm:"column:unit_value"`
	Images           pq.StringArray    `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	Thumbnail        string            `gorm:"column:thumbnail"`
	Stock            int               `gorm:"column:stock;not null;default:0"`
	Sold             int               `gorm:"column:sold;not null;default:0"`
	Rating           float64           `gorm:"column:rating;type:numeric(3,2);not null;default:0"`
	ReviewCount      int               `gorm:"column:review_count;not null;default:0"`
	Origin           string            `gorm:"column:origin"`
	Certifications   pq.StringArray    `gorm:"column:certifications;type:text[];not null;default:ARRAY[]::text[]"`
	Season           enums.Season      `gorm:"column:season;not null;default:'all'"`
	Type             enums.ProductType `gorm:"column:type;not null;default:'other'"`
	Tags             pq.StringArray    `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	IsFeatured       bool              `gorm:"column:is_featured;not null;default:false"`
	IsFlashSale      bool              `gorm:"column:is_flash_sale;not null;default:false"`
	FlashSaleEndTime *time.Time        `gorm:"column:flash_sale_end_time"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
