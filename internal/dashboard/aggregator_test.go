package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Order{}, &model.Product{}))
	return db
}

func TestReduce(t *testing.T) {
	orders := []model.Order{
		{TotalAmount: 49.99},
		{TotalAmount: 10.00},
	}

	summary := Reduce(orders, 7)

	assert.InDelta(t, 59.99, summary.TotalRevenue, 0.001)
	assert.Equal(t, 2, summary.TotalOrderCount)
	assert.Equal(t, 7, summary.TotalProductCount)
	assert.Len(t, summary.RecentOrders, 2)
}

func TestReduceEmpty(t *testing.T) {
	summary := Reduce(nil, 0)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalOrderCount)
	assert.Zero(t, summary.TotalProductCount)
	assert.NotNil(t, summary.RecentOrders)
	assert.Empty(t, summary.RecentOrders)
}

func TestComputeWindowsRecentOrders(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		order := model.Order{
			StoreID:      1,
			CustomerName: fmt.Sprintf("cliente %d", i),
			TotalAmount:  float64(i + 1), // 1..7
			Status:       model.OrderStatusCompleted,
			Source:       model.OrderSourceDirect,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&order).Error)
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&model.Product{
			StoreID: 1,
			Name:    fmt.Sprintf("producto %d", i),
			Price:   10,
		}).Error)
	}

	agg := NewAggregator(db, 5)
	summary, err := agg.Compute(ctx, 1)
	require.NoError(t, err)

	// Revenue is the windowed sum over the 5 newest orders (7+6+5+4+3),
	// not the all-time total of 28
	assert.InDelta(t, 25.0, summary.TotalRevenue, 0.001)
	assert.Equal(t, 5, summary.TotalOrderCount)
	assert.Equal(t, 3, summary.TotalProductCount)
	require.Len(t, summary.RecentOrders, 5)
	assert.Equal(t, "cliente 6", summary.RecentOrders[0].CustomerName)
}

func TestComputeScopedToStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Order{StoreID: 1, CustomerName: "a", TotalAmount: 5}).Error)
	require.NoError(t, db.Create(&model.Order{StoreID: 2, CustomerName: "b", TotalAmount: 100}).Error)
	require.NoError(t, db.Create(&model.Product{StoreID: 2, Name: "ajeno", Price: 1}).Error)

	agg := NewAggregator(db, 0) // falls back to the default window
	summary, err := agg.Compute(ctx, 1)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, summary.TotalRevenue, 0.001)
	assert.Equal(t, 1, summary.TotalOrderCount)
	assert.Zero(t, summary.TotalProductCount)
}

func TestComputeEmptyStore(t *testing.T) {
	db := newTestDB(t)

	agg := NewAggregator(db, 5)
	summary, err := agg.Compute(context.Background(), 42)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalOrderCount)
	assert.Zero(t, summary.TotalProductCount)
	assert.NotNil(t, summary.RecentOrders)
	assert.Empty(t, summary.RecentOrders)
}
