package model

import (
	"encoding/json"
	"time"
)

// Order statuses. Any status may follow any other; the dashboard only
// cares about the current value.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order sources
const (
	OrderSourceDirect      = "direct"
	OrderSourceFacebook    = "facebook"
	OrderSourceInstagram   = "instagram"
	OrderSourceWooCommerce = "woocommerce"
	OrderSourceShopify     = "shopify"
	OrderSourceOther       = "other"
)

// Order represents a customer order belonging to a store
type Order struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	StoreID       uint            `json:"store_id" gorm:"index;not null"`
	CustomerName  string          `json:"customer_name" gorm:"type:varchar(255);not null"`
	CustomerEmail string          `json:"customer_email" gorm:"type:varchar(255)"`
	TotalAmount   float64         `json:"total_amount" gorm:"not null"`
	Status        string          `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Source        string          `json:"source" gorm:"type:varchar(20);default:'direct'"`
	OrderData     json.RawMessage `json:"order_data" gorm:"type:jsonb"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ValidOrderStatus reports whether status is one of the known states
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidOrderSource reports whether source is one of the known channels
func ValidOrderSource(source string) bool {
	switch source {
	case OrderSourceDirect, OrderSourceFacebook, OrderSourceInstagram,
		OrderSourceWooCommerce, OrderSourceShopify, OrderSourceOther:
		return true
	}
	return false
}
