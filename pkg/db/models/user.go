package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront customer identified by phone number.
type User struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Phone     string    `gorm:"column:phone;not null;uniqueIndex:users_phone_key"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	AvatarURL string    `gorm:"column:avatar_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Address is a saved delivery address belonging to a user.
type Address struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:addresses_user_id_idx"`
	Recipient string    `gorm:"column:recipient;not null"`
	Phone     string    `gorm:"column:phone;not null"`
	Line1     string    `gorm:"column:line1;not null"`
	Ward      string    `gorm:"column:ward"`
	District  string    `gorm:"column:district"`
	City      string    `gorm:"column:city;not null"`
	IsDefault bool      `gorm:"column:is_default;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
