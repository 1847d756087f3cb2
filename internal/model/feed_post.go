package model

import (
	"time"
)

// FeedPost is a publishable projection of a product into the sales feed.
// Title, description, image and price are copied from the product at
// publish time and not kept in sync afterwards.
type FeedPost struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ProductID   uint      `json:"product_id" gorm:"index;not null"`
	StoreID     uint      `json:"store_id" gorm:"index;not null"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"not null"`
	ViewCount   int       `json:"view_count" gorm:"default:0"`
	ShareCount  int       `json:"share_count" gorm:"default:0"`
	LikeCount   int       `json:"like_count" gorm:"default:0"`
	IsFeatured  bool      `json:"is_featured" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`

	// Category is resolved from the source product when feed posts are
	// listed; it is not a column of its own.
	Category string `json:"category,omitempty" gorm:"-"`
}

// CategoryTag returns the post's resolved category for filter projection
func (p FeedPost) CategoryTag() string {
	return p.Category
}
