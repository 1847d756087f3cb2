package handler

import (
	"net/http"
	"strings"

	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderRequest defines the structure for order creation requests
type OrderRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerEmail string  `json:"customer_email"`
	TotalAmount   float64 `json:"total_amount" validate:"required,gt=0"`
	Status        string  `json:"status"`
	Source        string  `json:"source"`
}

// ListOrders retrieves the caller's orders newest first, with optional
// status filter and customer search applied over the fetched set
func ListOrders(c echo.Context) error {
	log := logger.FromEcho(c)

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var orders []model.Order
	result := database.GetDB().
		Where("store_id = ?", store.ID).
		Order("created_at DESC").
		Find(&orders)
	if result.Error != nil {
		log.Error("Failed to list orders",
			zap.Uint("store_id", store.ID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve orders"})
	}

	status := c.QueryParam("status")
	search := strings.ToLower(c.QueryParam("q"))

	filtered := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if status != "" && status != "all" && order.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(order.CustomerName), search) &&
			!strings.Contains(strings.ToLower(order.CustomerEmail), search) {
			continue
		}
		filtered = append(filtered, order)
	}

	return c.JSON(http.StatusOK, filtered)
}

// CreateOrder creates a manual order for the caller's store
func CreateOrder(c echo.Context) error {
	log := logger.FromEcho(c)

	store, err := currentStore(c)
	if err != nil {
		log.Error("Failed to load store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load store"})
	}
	if store == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "store not found"})
	}

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.CustomerName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer name is required"})
	}
	if req.TotalAmount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "total amount must be positive"})
	}
	if req.Status == "" {
		req.Status = model.OrderStatusPending
	}
	if !model.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown order status"})
	}
	if req.Source == "" {
		req.Source = model.OrderSourceDirect
	}
	if !model.ValidOrderSource(req.Source) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown order source"})
	}

	order := model.Order{
		StoreID:       store.ID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		TotalAmount:   req.TotalAmount,
		Status:        req.Status,
		Source:        req.Source,
		OrderData:     []byte("{}"),
	}

	if result := database.GetDB().Create(&order); result.Error != nil {
		log.Error("Failed to create order",
			zap.Uint("store_id", store.ID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create order"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("order", "create").Inc()
	log.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("store_id", store.ID),
		zap.Float64("total_amount", order.TotalAmount),
		zap.String("source", order.Source))
	return c.JSON(http.StatusCreated, order)
}

// UpdateOrderStatus sets an order's status. Any status may follow any
// other; transitions are not restricted.
func UpdateOrderStatus(c echo.Context) error {
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

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if !model.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown order status"})
	}

	var order model.Order
	result := database.GetDB().Where("id = ? AND store_id = ?", id, store.ID).First(&order)
	if result.Error != nil {
		log.Warn("Order not found",
			zap.String("order_id", id),
			zap.Uint("store_id", store.ID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	}

	oldStatus := order.Status
	order.Status = req.Status
	if result := database.GetDB().Save(&order); result.Error != nil {
		log.Error("Failed to update order status",
			zap.String("order_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update order"})
	}

	prometheus.EntityOperationsCounter.WithLabelValues("order", "update_status").Inc()
	log.Info("Order status updated",
		zap.Uint("order_id", order.ID),
		zap.String("old_status", oldStatus),
		zap.String("new_status", order.Status))
	return c.JSON(http.StatusOK, order)
}
