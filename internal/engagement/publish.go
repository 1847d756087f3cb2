package engagement

import (
	"context"

	"storefront-service/internal/model"
	"storefront-service/pkg/logger"

	"go.uber.org/zap"
)

// PublishToFeed creates the companion feed post for a freshly created
// product, copying the product's presentation fields. The copied price
// is a snapshot; later product edits do not touch the post. Each call
// creates exactly one post with no dedup across calls, so callers fire
// it once per product-creation event.
func (s *Service) PublishToFeed(ctx context.Context, product *model.Product, storeID, userID uint) (*model.FeedPost, error) {
	if product == nil || product.ID == 0 {
		return nil, ErrProductNotPersisted
	}
	if userID == 0 {
		return nil, ErrUserRequired
	}

	post := model.FeedPost{
		ProductID:   product.ID,
		StoreID:     storeID,
		UserID:      userID,
		Title:       product.Name,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Price:       product.Price,
	}

	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("Feed post created",
		zap.Uint("post_id", post.ID),
		zap.Uint("product_id", post.ProductID),
		zap.Uint("store_id", post.StoreID))
	return &post, nil
}
