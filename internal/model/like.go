package model

import (
	"time"
)

// Like is the join row behind the like toggle. The composite unique
// index keeps at most one row per (user, post) pair even if two
// toggles race past the existence check.
type Like struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_likes_user_post;not null"`
	PostID    uint      `json:"post_id" gorm:"uniqueIndex:idx_likes_user_post;not null"`
	CreatedAt time.Time `json:"created_at"`
}
