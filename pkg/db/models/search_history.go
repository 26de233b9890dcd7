package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchHistory records a keyword a user committed from the search box.
type SearchHistory struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:search_history_user_id_idx"`
	Keyword   string    `gorm:"column:keyword;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
