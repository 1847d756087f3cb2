package handler

import (
	"net/http"

	"storefront-service/internal/dashboard"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// recentOrderWindow is set from configuration at startup
var recentOrderWindow = dashboard.DefaultRecentOrderWindow

// SetRecentOrderWindow overrides the dashboard recent-order window
func SetRecentOrderWindow(window int) {
	if window > 0 {
		recentOrderWindow = window
	}
}

// GetDashboard computes the caller's dashboard rollups. Revenue and
// order count cover the recent-order window only.
func GetDashboard(c echo.Context) error {
	log := logger.FromEcho(c)

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	agg := dashboard.NewAggregator(database.GetDB(), recentOrderWindow)
	summary, err := agg.Compute(c.Request().Context(), store.ID)
	if err != nil {
		log.Error("Failed to compute dashboard",
			zap.Uint("store_id", store.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute dashboard"})
	}

	return c.JSON(http.StatusOK, summary)
}
