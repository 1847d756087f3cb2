package handler

import (
	"net/http"

	"storefront-service/internal/catalog"
	"storefront-service/internal/model"
	"storefront-service/internal/share"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MarketplaceProduct is a public product listing entry with its
// share/contact links resolved
type MarketplaceProduct struct {
	model.Product
	ShareLink    string `json:"share_link"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}

// ListMarketplaceProducts returns all active products across stores,
// newest first, with an optional category projection
func ListMarketplaceProducts(c echo.Context) error {
	log := logger.FromEcho(c)

	var products []model.Product
	result := database.GetDB().
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to list marketplace products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve products"})
	}

	products = catalog.ByCategory(products, c.QueryParam("category"))

	listing := make([]MarketplaceProduct, 0, len(products))
	for _, product := range products {
		listing = append(listing, MarketplaceProduct{
			Product:      product,
			ShareLink:    share.ProductLink(siteURL, product.ID),
			WhatsAppLink: share.CompanyWhatsAppLink(&product),
		})
	}

	return c.JSON(http.StatusOK, listing)
}
