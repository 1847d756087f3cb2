package handler

import (
	"net/http"

	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StoreRequest defines the structure for store creation/update requests
type StoreRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Domain      *string `json:"domain"`
	LogoURL     string  `json:"logo_url"`
}

// CreateStore handles store creation. Each user owns at most one store;
// a second creation attempt is rejected.
func CreateStore(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		log.Error("Failed to get user ID from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.Name == "" {
		log.Warn("Store creation without name", zap.Uint("user_id", userID))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	// One store per owner
	var count int64
	database.GetDB().Model(&model.Store{}).Where("owner_id = ?", userID).Count(&count)
	if count > 0 {
		log.Warn("User already owns a store", zap.Uint("user_id", userID))
		return c.JSON(http.StatusConflict, echo.Map{"error": "a store already exists for this user"})
	}

	store := model.Store{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Domain:      req.Domain,
		LogoURL:     req.LogoURL,
	}

	if result := database.GetDB().Create(&store); result.Error != nil {
		log.Error("Failed to create store",
			zap.Uint("user_id", userID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create store"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("store", "create").Inc()
	log.Info("Store created",
		zap.Uint("store_id", store.ID),
		zap.Uint("owner_id", store.OwnerID),
		zap.String("name", store.Name))
	return c.JSON(http.StatusCreated, store)
}

// GetMyStore returns the authenticated user's store. A missing store is
// the empty state that routes the client to store setup.
func GetMyStore(c echo.Context) error {
	log := logger.FromEcho(c)

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	return c.JSON(http.StatusOK, store)
}

// UpdateMyStore replaces the authenticated user's store profile with
// the request body. Name is required; omitted optional fields clear.
func UpdateMyStore(c echo.Context) error {
	log := logger.FromEcho(c)

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	// Full replacement: the request carries the complete store profile
	store.Name = req.Name
	store.Description = req.Description
	store.Domain = req.Domain
	store.LogoURL = req.LogoURL

	if result := database.GetDB().Save(store); result.Error != nil {
		log.Error("Failed to update store",
			zap.Uint("store_id", store.ID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update store"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("store", "update").Inc()
	log.Info("Store updated", zap.Uint("store_id", store.ID))
	return c.JSON(http.StatusOK, store)
}
