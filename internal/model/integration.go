package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Integration platform types
const (
	PlatformTypeSocialMedia = "social_media"
	PlatformTypeEcommerce   = "ecommerce"
	PlatformTypeCustom      = "custom"
	PlatformTypeAutomation  = "automation"
)

// Integration represents a third-party sales channel connected to a store.
// Duplicate (store, platform) rows are discouraged by the API surface but
// not constrained at the schema.
type Integration struct {
	ID           uint            `json:"id" gorm:"primarykey"`
	StoreID      uint            `json:"store_id" gorm:"index;not null"`
	PlatformName string          `json:"platform_name" gorm:"type:varchar(100);not null"`
	PlatformType string          `json:"platform_type" gorm:"type:varchar(20);not null"`
	APIKey       string          `json:"api_key" gorm:"type:text"`
	Config       json.RawMessage `json:"config" gorm:"type:jsonb"`
	IsActive     bool            `json:"is_active" gorm:"default:true"`
	LastSync     *time.Time      `json:"last_sync"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`
}

// IntegrationConfig is the shape stored in the opaque Config payload
type IntegrationConfig struct {
	WebhookURL  string `json:"webhook_url"`
	SyncEnabled bool   `json:"sync_enabled"`
}

// ValidPlatformType reports whether t is a known platform type
func ValidPlatformType(t string) bool {
	switch t {
	case PlatformTypeSocialMedia, PlatformTypeEcommerce, PlatformTypeCustom, PlatformTypeAutomation:
		return true
	}
	return false
}
