package engagement

import (
	"context"
	"errors"

	"storefront-service/internal/model"

	"gorm.io/gorm"
)

// LikeState is the view-state result of a toggle, reflected to the
// caller only after persistence succeeded.
type LikeState struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// ToggleLike flips the like state for (userID, postID). When no like
// row exists one is created and the post's like count incremented;
// when one exists it is deleted and the count decremented. The row
// mutation and the counter update share one transaction, so the like
// count never drifts from the row's existence.
func (s *Service) ToggleLike(ctx context.Context, userID, postID uint) (*LikeState, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	if postID == 0 {
		return nil, ErrPostRequired
	}

	var state LikeState
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.FeedPost
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}

		var like model.Like
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
		switch {
		case err == nil:
			// Unlike: remove the row, then decrement by exactly one
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.FeedPost{}).Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error; err != nil {
				return err
			}
			state.Liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Like: insert the row, then increment by exactly one
			if err := tx.Create(&model.Like{UserID: userID, PostID: postID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.FeedPost{}).Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error; err != nil {
				return err
			}
			state.Liked = true
		default:
			return err
		}

		return tx.Model(&model.FeedPost{}).Select("like_count").
			Where("id = ?", postID).Scan(&state.LikeCount).Error
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// IsLiked reports whether userID currently likes postID. Absence of a
// row is the valid "not liked" state, not an error.
func (s *Service) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
