package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-service/internal/catalog"
	"storefront-service/internal/engagement"
	"storefront-service/internal/model"
	"storefront-service/internal/share"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListFeed returns sales-feed posts newest first. `filter=featured`
// narrows at the query; `category` is projected over the fetched set.
func ListFeed(c echo.Context) error {
	log := logger.FromEcho(c)

	query := database.GetDB().Model(&model.FeedPost{}).Order("created_at DESC")
	if c.QueryParam("filter") == "featured" {
		query = query.Where("is_featured = ?", true)
	}

	var posts []model.FeedPost
	if result := query.Find(&posts); result.Error != nil {
		log.Error("Failed to list feed posts", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve feed"})
	}

	if err := resolvePostCategories(posts); err != nil {
		log.Error("Failed to resolve post categories", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve feed"})
	}

	posts = catalog.ByCategory(posts, c.QueryParam("category"))
	return c.JSON(http.StatusOK, posts)
}

// resolvePostCategories fills each post's category from its source
// product. Posts whose product has since been deleted keep an empty tag.
func resolvePostCategories(posts []model.FeedPost) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ProductID)
	}

	var products []model.Product
	if err := database.GetDB().Where("id IN ?", ids).Find(&products).Error; err != nil {
		return err
	}

	categories := make(map[uint]string, len(products))
	for _, product := range products {
		categories[product.ID] = product.Category
	}
	for i := range posts {
		posts[i].Category = categories[posts[i].ProductID]
	}
	return nil
}

// BumpFeedView records one view of a feed post. Views count per
// interaction; repeat views from the same session all count.
func BumpFeedView(c echo.Context) error {
	log := logger.FromEcho(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid post ID"})
	}

	svc := engagement.NewService(database.GetDB())
	post, err := svc.BumpView(c.Request().Context(), uint(postID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		log.Error("Failed to bump view count",
			zap.Uint64("post_id", postID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update view count"})
	}

	prometheus.FeedViewsCounter.Inc()
	return c.JSON(http.StatusOK, post)
}

// BumpFeedShare records one share of a feed post and returns the
// refreshed post along with the share payload to hand off.
func BumpFeedShare(c echo.Context) error {
	log := logger.FromEcho(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid post ID"})
	}

	svc := engagement.NewService(database.GetDB())
	post, err := svc.BumpShare(c.Request().Context(), uint(postID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		log.Error("Failed to bump share count",
			zap.Uint64("post_id", postID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update share count"})
	}

	prometheus.FeedSharesCounter.Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"post":  post,
		"share": share.ForPost(siteURL, post),
	})
}

// ToggleFeedLike flips the caller's like on a feed post
func ToggleFeedLike(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid post ID"})
	}

	svc := engagement.NewService(database.GetDB())
	state, err := svc.ToggleLike(c.Request().Context(), userID, uint(postID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		log.Error("Failed to toggle like",
			zap.Uint("user_id", userID),
			zap.Uint64("post_id", postID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to toggle like"})
	}

	result := "unliked"
	if state.Liked {
		result = "liked"
	}
	prometheus.LikeTogglesCounter.WithLabelValues(result).Inc()
	log.Info("Like toggled",
		zap.Uint("user_id", userID),
		zap.Uint64("post_id", postID),
		zap.Bool("liked", state.Liked),
		zap.Int("like_count", state.LikeCount))
	return c.JSON(http.StatusOK, state)
}
