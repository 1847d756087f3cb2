package model

import (
	"time"

	"gorm.io/gorm"
)

// Supported currency codes for product prices
const (
	CurrencyCOP = "COP"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyMXN = "MXN"
)

// Categories available as product/post filter tags
var Categories = []string{
	"camisas",
	"pantalones",
	"zapatos",
	"gorras",
	"reloj",
	"anillos",
	"pulseras",
	"otro",
}

// Product represents an item sold by a store
type Product struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	StoreID         uint           `json:"store_id" gorm:"index;not null"`
	Name            string         `json:"name" gorm:"type:varchar(255);not null"`
	Description     string         `json:"description" gorm:"type:text"`
	Price           float64        `json:"price" gorm:"not null"`
	Currency        string         `json:"currency" gorm:"type:varchar(3);default:'COP'"`
	Stock           int            `json:"stock" gorm:"default:0"`
	ImageURL        string         `json:"image_url" gorm:"type:text"`
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	Category        string         `json:"category" gorm:"type:varchar(100);index"`
	CompanyName     string         `json:"company_name" gorm:"type:varchar(255)"`
	CompanyNIT      string         `json:"company_nit" gorm:"type:varchar(100)"`
	CompanyEmail    string         `json:"company_email" gorm:"type:varchar(255)"`
	CompanyWhatsApp string         `json:"company_whatsapp" gorm:"type:varchar(50)"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// CategoryTag returns the product's category for filter projection
func (p Product) CategoryTag() string {
	return p.Category
}

// ValidCategory reports whether category is a known tag. The empty
// string is accepted: categorizing a product is optional.
func ValidCategory(category string) bool {
	if category == "" {
		return true
	}
	for _, known := range Categories {
		if known == category {
			return true
		}
	}
	return false
}

// ValidCurrency reports whether code is a supported currency
func ValidCurrency(code string) bool {
	switch code {
	case CurrencyCOP, CurrencyUSD, CurrencyEUR, CurrencyMXN:
		return true
	}
	return false
}

// CurrencySymbol returns the display symbol for a currency code
func CurrencySymbol(code string) string {
	if code == CurrencyEUR {
		return "€"
	}
	return "$"
}
