package model

import (
	"time"
)

// Store represents a tenant's shop. Each owner has at most one store,
// enforced by the unique index on OwnerID.
type Store struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	OwnerID     uint      `json:"owner_id" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Domain      *string   `json:"domain" gorm:"type:varchar(255)"`
	LogoURL     string    `json:"logo_url" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
