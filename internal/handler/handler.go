package handler

import (
	"errors"

	"storefront-service/internal/model"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var siteURL string

// Configure sets handler-level settings from the loaded configuration
func Configure(cfg *config.Config) {
	siteURL = cfg.Server.SiteURL
}

// currentStore looks up the authenticated user's store. A user without
// a store is a valid empty state: (nil, nil) is returned, not an error.
func currentStore(c echo.Context) (*model.Store, error) {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return nil, errors.New("authentication required")
	}

	var store model.Store
	err := database.GetDB().Where("owner_id = ?", userID).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}
