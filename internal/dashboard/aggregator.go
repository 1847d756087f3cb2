// Package dashboard derives the storefront dashboard rollups from
// fetched order and product snapshots.
package dashboard

import (
	"context"
	"sync"

	"storefront-service/internal/model"
	"storefront-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultRecentOrderWindow bounds the recent-orders fetch. Revenue and
// order count are rolled up over this window only, not over all time.
const DefaultRecentOrderWindow = 5

// Summary holds the derived dashboard figures for one store
type Summary struct {
	TotalRevenue      float64       `json:"total_revenue"`
	TotalOrderCount   int           `json:"total_order_count"`
	TotalProductCount int           `json:"total_product_count"`
	RecentOrders      []model.Order `json:"recent_orders"`
}

// Aggregator computes dashboard summaries
type Aggregator struct {
	db     *gorm.DB
	window int
}

// NewAggregator creates an aggregator with the given recent-order
// window; window <= 0 falls back to the default.
func NewAggregator(db *gorm.DB, window int) *Aggregator {
	if window <= 0 {
		window = DefaultRecentOrderWindow
	}
	return &Aggregator{db: db, window: window}
}

// Compute fetches the store's recent orders and full product set
// concurrently, then reduces them into a Summary. The result is
// derived from scratch on every call; nothing is cached.
func (a *Aggregator) Compute(ctx context.Context, storeID uint) (*Summary, error) {
	var (
		orders       []model.Order
		productCount int64
		ordersErr    error
		productsErr  error
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		ordersErr = a.db.WithContext(ctx).
			Where("store_id = ?", storeID).
			Order("created_at DESC").
			Limit(a.window).
			Find(&orders).Error
	}()

	go func() {
		defer wg.Done()
		productsErr = a.db.WithContext(ctx).
			Model(&model.Product{}).
			Where("store_id = ?", storeID).
			Count(&productCount).Error
	}()

	wg.Wait()

	if ordersErr != nil {
		return nil, ordersErr
	}
	if productsErr != nil {
		return nil, productsErr
	}

	summary := Reduce(orders, int(productCount))
	logger.FromContext(ctx).Debug("Dashboard computed",
		zap.Uint("store_id", storeID),
		zap.Int("recent_orders", summary.TotalOrderCount),
		zap.Int("products", summary.TotalProductCount))
	return summary, nil
}

// Reduce derives the rollup figures from fetched snapshots. Revenue
// and order count cover only the orders passed in, so with a bounded
// window they describe recent activity rather than historical totals.
func Reduce(orders []model.Order, productCount int) *Summary {
	summary := &Summary{
		TotalOrderCount:   len(orders),
		TotalProductCount: productCount,
		RecentOrders:      orders,
	}
	if summary.RecentOrders == nil {
		summary.RecentOrders = []model.Order{}
	}
	for _, order := range orders {
		summary.TotalRevenue += order.TotalAmount
	}
	return summary
}
