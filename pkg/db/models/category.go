package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for browsing.
type Category struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	NameEn       string    `gorm:"column:name_en;not null"`
	Icon         string    `gorm:"column:icon"`
	Image        string    `gorm:"column:image"`
	ProductCount int       `gorm:"column:product_count;not null;default:0"`
	Badge        *string   `gorm:"column:badge"`
	SortOrder    int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// Banner is a promotional slot shown on the storefront home screen.
type Banner struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	Subtitle  string    `gorm:"column:subtitle"`
	Image     string    `gorm:"column:image"`
	Kind      string    `gorm:"column:kind"`
	Link      string    `gorm:"column:link"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
