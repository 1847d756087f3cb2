package handler

import (
	"net/http"

	"storefront-service/internal/engagement"
	"storefront-service/internal/model"
	"storefront-service/internal/share"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" validate:"required,gte=0"`
	Currency        string  `json:"currency"`
	Stock           int     `json:"stock"`
	ImageURL        string  `json:"image_url"`
	IsActive        bool    `json:"is_active"`
	Category        string  `json:"category"`
	CompanyName     string  `json:"company_name"`
	CompanyNIT      string  `json:"company_nit"`
	CompanyEmail    string  `json:"company_email"`
	CompanyWhatsApp string  `json:"company_whatsapp"`
}

// ListProducts retrieves the authenticated store's products, newest first
func ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var products []model.Product
	result := database.GetDB().
		Where("store_id = ?", store.ID).
		Order("created_at DESC").
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products",
			zap.Uint("store_id", store.ID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve products"})
	}

	return c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a single product belonging to the caller's store
func GetProduct(c echo.Context) error {
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

	var product model.Product
	result := database.GetDB().Where("id = ? AND store_id = ?", id, store.ID).First(&product)
	if result.Error != nil {
		log.Warn("Product not found",
			zap.String("product_id", id),
			zap.Uint("store_id", store.ID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct creates a product for the caller's store
func CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}
	if req.Stock < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stock must not be negative"})
	}
	if req.Currency == "" {
		req.Currency = model.CurrencyCOP
	}
	if !model.ValidCurrency(req.Currency) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported currency"})
	}
	if !model.ValidCategory(req.Category) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}

	product := model.Product{
		StoreID:         store.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Currency:        req.Currency,
		Stock:           req.Stock,
		ImageURL:        req.ImageURL,
		IsActive:        req.IsActive,
		Category:        req.Category,
		CompanyName:     req.CompanyName,
		CompanyNIT:      req.CompanyNIT,
		CompanyEmail:    req.CompanyEmail,
		CompanyWhatsApp: req.CompanyWhatsApp,
	}

	if result := database.GetDB().Create(&product); result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Uint("store_id", store.ID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create product"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("product", "create").Inc()
	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.Uint("store_id", store.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct updates an existing product of the caller's store
func UpdateProduct(c echo.Context) error {
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

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var product model.Product
	result := database.GetDB().Where("id = ? AND store_id = ?", id, store.ID).First(&product)
	if result.Error != nil {
		log.Warn("Product not found for update",
			zap.String("product_id", id),
			zap.Uint("store_id", store.ID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}
	if req.Stock < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stock must not be negative"})
	}
	if req.Currency != "" && !model.ValidCurrency(req.Currency) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported currency"})
	}
	if !model.ValidCategory(req.Category) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.Currency != "" {
		product.Currency = req.Currency
	}
	product.Stock = req.Stock
	product.ImageURL = req.ImageURL
	product.IsActive = req.IsActive
	product.Category = req.Category
	product.CompanyName = req.CompanyName
	product.CompanyNIT = req.CompanyNIT
	product.CompanyEmail = req.CompanyEmail
	product.CompanyWhatsApp = req.CompanyWhatsApp

	if result := database.GetDB().Save(&product); result.Error != nil {
		log.Error("Failed to update product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update product"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("product", "update").Inc()
	log.Info("Product updated",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the caller's store (soft delete)
func DeleteProduct(c echo.Context) error {
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

	result := database.GetDB().Where("store_id = ?", store.ID).Delete(&model.Product{}, id)
	if result.Error != nil {
		log.Error("Failed to delete product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete product"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Product not found for deletion", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("product", "delete").Inc()
	log.Info("Product deleted", zap.String("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted successfully"})
}

// PublishProduct runs the publish-to-feed workflow for a product that
// was just created
func PublishProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var product model.Product
	result := database.GetDB().Where("id = ? AND store_id = ?", id, store.ID).First(&product)
	if result.Error != nil {
		log.Warn("Product not found for publish",
			zap.String("product_id", id),
			zap.Uint("store_id", store.ID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	svc := engagement.NewService(database.GetDB())
	post, err := svc.PublishToFeed(c.Request().Context(), &product, store.ID, userID)
	if err != nil {
		log.Error("Failed to publish product to feed",
			zap.Uint("product_id", product.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to publish product to feed"})
	}

	prometheus.FeedPublishCounter.Inc()
	log.Info("Product published to feed",
		zap.Uint("product_id", product.ID),
		zap.Uint("post_id", post.ID),
		zap.Uint("store_id", store.ID))
	return c.JSON(http.StatusCreated, post)
}

// ShareProduct builds the outbound share payload for a product on the
// requested channel. The hand-off is fire-and-forget: the payload is
// returned and nothing is awaited.
func ShareProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")
	channel := c.QueryParam("channel")

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var product model.Product
	result := database.GetDB().Where("id = ? AND store_id = ?", id, store.ID).First(&product)
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	payload, err := share.ForProduct(channel, siteURL, &product)
	if err != nil {
		log.Warn("Unsupported share channel", zap.String("channel", channel))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported share channel"})
	}

	prometheus.SharePayloadCounter.WithLabelValues(channel).Inc()
	return c.JSON(http.StatusOK, payload)
}
