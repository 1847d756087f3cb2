package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// IntegrationRequest defines the structure for integration connect requests
type IntegrationRequest struct {
	PlatformName string `json:"platform_name" validate:"required"`
	PlatformType string `json:"platform_type" validate:"required"`
	APIKey       string `json:"api_key"`
	WebhookURL   string `json:"webhook_url"`
	SyncEnabled  bool   `json:"sync_enabled"`
}

// ListIntegrations retrieves the caller's integrations newest first
func ListIntegrations(c echo.Context) error {
	log := logger.FromEcho(c)

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var integrations []model.Integration
	result := database.GetDB().
		Where("store_id = ?", store.ID).
		Order("created_at DESC").
		Find(&integrations)
	if result.Error != nil {
		log.Error("Failed to list integrations",
			zap.Uint("store_id", store.ID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve integrations"})
	}

	return c.JSON(http.StatusOK, integrations)
}

// CreateIntegration connects a platform to the caller's store. The API
// rejects a duplicate for a platform that is already connected; the
// schema itself does not.
func CreateIntegration(c echo.Context) error {
	log := logger.FromEcho(c)

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var req IntegrationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.PlatformName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "platform name is required"})
	}
	if !model.ValidPlatformType(req.PlatformType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown platform type"})
	}

	var count int64
	database.GetDB().Model(&model.Integration{}).
		Where("store_id = ? AND platform_name = ?", store.ID, req.PlatformName).
		Count(&count)
	if count > 0 {
		log.Warn("Platform already connected",
			zap.Uint("store_id", store.ID),
			zap.String("platform_name", req.PlatformName))
		return c.JSON(http.StatusConflict, echo.Map{"error": "platform is already connected"})
	}

	cfg, err := json.Marshal(model.IntegrationConfig{
		WebhookURL:  req.WebhookURL,
		SyncEnabled: req.SyncEnabled,
	})
	if err != nil {
		log.Error("Failed to encode integration config", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create integration"})
	}

	integration := model.Integration{
		StoreID:      store.ID,
		PlatformName: req.PlatformName,
		PlatformType: req.PlatformType,
		APIKey:       req.APIKey,
		Config:       cfg,
		IsActive:     true,
	}

	if result := database.GetDB().Create(&integration); result.Error != nil {
		log.Error("Failed to create integration",
			zap.Uint("store_id", store.ID),
			zap.String("platform_name", req.PlatformName),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create integration"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("integration", "create").Inc()
	log.Info("Integration created",
		zap.Uint("integration_id", integration.ID),
		zap.Uint("store_id", store.ID),
		zap.String("platform_name", integration.PlatformName))
	return c.JSON(http.StatusCreated, integration)
}

// DeleteIntegration disconnects a platform from the caller's store
func DeleteIntegration(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	result := database.GetDB().Where("store_id = ?", store.ID).Delete(&model.Integration{}, id)
	if result.Error != nil {
		log.Error("Failed to delete integration",
			zap.String("integration_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete integration"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "integration not found"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("integration", "delete").Inc()
	log.Info("Integration deleted", zap.String("integration_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "integration deleted successfully"})
}

// SyncIntegration stamps the integration's last-sync time. No external
// call is made.
func SyncIntegration(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var integration model.Integration
	result := database.GetDB().Where("id = ? AND store_id = ?", id, store.ID).First(&integration)
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "integration not found"})
	}

	now := time.Now()
	integration.LastSync = &now
	if result := database.GetDB().Save(&integration); result.Error != nil {
		log.Error("Failed to sync integration",
			zap.String("integration_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to sync integration"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("integration", "sync").Inc()
	log.Info("Integration synced",
		zap.Uint("integration_id", integration.ID),
		zap.Time("last_sync", now))
	return c.JSON(http.StatusOK, integration)
}

// ToggleIntegration flips the integration's active flag
func ToggleIntegration(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var integration model.Integration
	result := database.GetDB().Where("id = ? AND store_id = ?", id, store.ID).First(&integration)
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "integration not found"})
	}

	integration.IsActive = !integration.IsActive
	if result := database.GetDB().Save(&integration); result.Error != nil {
		log.Error("Failed to toggle integration",
			zap.String("integration_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to toggle integration"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("integration", "toggle").Inc()
	log.Info("Integration toggled",
		zap.Uint("integration_id", integration.ID),
		zap.Bool("is_active", integration.IsActive))
	return c.JSON(http.StatusOK, integration)
}
