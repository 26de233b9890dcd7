package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Review is a customer rating attached to a product.
type Review struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID  uuid.UUID      `gorm:"column:product_id;type:uuid;not null;index:reviews_product_id_idx"`
	UserID     uuid.UUID      `gorm:"column:user_id;type:uuid;not null"`
	UserName   string         `gorm:"column:user_name"`
	UserAvatar string         `gorm:"column:user_avatar"`
	Rating     float64        `gorm:"column:rating;type:numeric(3,2);not null"`
	Comment    string         `gorm:"column:comment"`
	Images     pq.StringArray `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	Helpful    int            `gorm:"column:helpful;not null;default:0"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
}
