package engagement

import (
	"context"

	"storefront-service/internal/model"

	"gorm.io/gorm"
)

// BumpView records one view of a feed post and returns the refreshed post.
// Views are counted per interaction without deduplication; the same
// session viewing a post repeatedly bumps it repeatedly.
func (s *Service) BumpView(ctx context.Context, postID uint) (*model.FeedPost, error) {
	return s.bump(ctx, postID, "view_count")
}

// BumpShare records one share of a feed post and returns the refreshed post.
func (s *Service) BumpShare(ctx context.Context, postID uint) (*model.FeedPost, error) {
	return s.bump(ctx, postID, "share_count")
}

// bump applies a single-statement atomic increment so that concurrent
// sessions bumping the same post never lose an update. Each logical
// event maps to exactly one counter delta.
func (s *Service) bump(ctx context.Context, postID uint, column string) (*model.FeedPost, error) {
	if postID == 0 {
		return nil, ErrPostRequired
	}

	result := s.db.WithContext(ctx).
		Model(&model.FeedPost{}).
		Where("id = ?", postID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var post model.FeedPost
	if err := s.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}
