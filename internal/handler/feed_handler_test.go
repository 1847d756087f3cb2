package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"storefront-service/internal/model"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{
		ServiceName: "storefront-service",
		Server:      config.ServerConfig{SiteURL: "https://tienda.example.com"},
		Metrics:     config.MetricsConfig{Prefix: "storefront_test"},
	}
	prometheus.InitMetrics(cfg)
	Configure(cfg)
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Store{},
		&model.Product{},
		&model.Order{},
		&model.Integration{},
		&model.FeedPost{},
		&model.Like{},
	))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
	return db
}

func newContext(t *testing.T, method, target string, paramNames, paramValues []string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(paramNames) > 0 {
		c.SetParamNames(paramNames...)
		c.SetParamValues(paramValues...)
	}
	return c, rec
}

func TestListFeedResolvesCategories(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&model.Product{StoreID: 1, Name: "Camisa", Price: 10, Currency: model.CurrencyCOP, Category: "camisas"}).Error)
	require.NoError(t, db.Create(&model.Product{StoreID: 1, Name: "Gorra", Price: 5, Currency: model.CurrencyCOP, Category: "gorras"}).Error)
	require.NoError(t, db.Create(&model.FeedPost{ProductID: 1, StoreID: 1, UserID: 1, Title: "Camisa", Price: 10}).Error)
	require.NoError(t, db.Create(&model.FeedPost{ProductID: 2, StoreID: 1, UserID: 1, Title: "Gorra", Price: 5}).Error)

	c, rec := newContext(t, http.MethodGet, "/api/feed?category=camisas", nil, nil)
	require.NoError(t, ListFeed(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []model.FeedPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Camisa", posts[0].Title)
	assert.Equal(t, "camisas", posts[0].Category)
}

func TestListFeedFeaturedFilter(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&model.FeedPost{ProductID: 1, StoreID: 1, UserID: 1, Title: "Normal", Price: 10}).Error)
	require.NoError(t, db.Create(&model.FeedPost{ProductID: 2, StoreID: 1, UserID: 1, Title: "Destacada", Price: 20, IsFeatured: true}).Error)

	c, rec := newContext(t, http.MethodGet, "/api/feed?filter=featured", nil, nil)
	require.NoError(t, ListFeed(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []model.FeedPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Destacada", posts[0].Title)
}

func TestBumpFeedViewEndpoint(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&model.FeedPost{ProductID: 1, StoreID: 1, UserID: 1, Title: "Camisa", Price: 10, ViewCount: 2}).Error)

	c, rec := newContext(t, http.MethodPost, "/api/feed/1/view", []string{"id"}, []string{"1"})
	require.NoError(t, BumpFeedView(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var post model.FeedPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, 3, post.ViewCount)
}

func TestBumpFeedViewMissingPost(t *testing.T) {
	setupTestDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/feed/99/view", []string{"id"}, []string{"99"})
	require.NoError(t, BumpFeedView(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBumpFeedViewInvalidID(t *testing.T) {
	setupTestDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/feed/abc/view", []string{"id"}, []string{"abc"})
	require.NoError(t, BumpFeedView(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBumpFeedShareEndpoint(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&model.FeedPost{ProductID: 1, StoreID: 1, UserID: 1, Title: "Camisa", Price: 10}).Error)

	c, rec := newContext(t, http.MethodPost, "/api/feed/1/share", []string{"id"}, []string{"1"})
	require.NoError(t, BumpFeedShare(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Post  model.FeedPost `json:"post"`
		Share struct {
			Channel string `json:"channel"`
			Text    string `json:"text"`
			URL     string `json:"url"`
		} `json:"share"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Post.ShareCount)
	assert.Equal(t, "facebook", body.Share.Channel)
	assert.Contains(t, body.Share.Text, "Camisa")
	assert.Contains(t, body.Share.URL, "facebook.com/sharer")
}

func TestToggleFeedLikeEndpoint(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&model.FeedPost{ProductID: 1, StoreID: 1, UserID: 1, Title: "Camisa", Price: 10}).Error)

	like := func() (bool, int) {
		c, rec := newContext(t, http.MethodPost, "/api/feed/1/like", []string{"id"}, []string{"1"})
		c.Set("user_id", uint(9))
		require.NoError(t, ToggleFeedLike(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var state struct {
			Liked     bool `json:"liked"`
			LikeCount int  `json:"like_count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		return state.Liked, state.LikeCount
	}

	liked, count := like()
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count = like()
	assert.False(t, liked)
	assert.Equal(t, 0, count)

	var rows int64
	require.NoError(t, db.Model(&model.Like{}).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestToggleFeedLikeUnauthenticated(t *testing.T) {
	setupTestDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/feed/1/like", []string{"id"}, []string{"1"})
	require.NoError(t, ToggleFeedLike(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetDashboardEndpoint(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&model.Store{OwnerID: 9, Name: "Mi Tienda"}).Error)
	require.NoError(t, db.Create(&model.Order{StoreID: 1, CustomerName: "cliente", TotalAmount: 49.99, Status: model.OrderStatusPending, Source: model.OrderSourceDirect, OrderData: []byte("{}")}).Error)
	require.NoError(t, db.Create(&model.Order{StoreID: 1, CustomerName: "cliente", TotalAmount: 10.00, Status: model.OrderStatusPending, Source: model.OrderSourceDirect, OrderData: []byte("{}")}).Error)
	for i := 0; i < 7; i++ {
		require.NoError(t, db.Create(&model.Product{StoreID: 1, Name: "Producto " + strconv.Itoa(i), Price: 1, Currency: model.CurrencyCOP}).Error)
	}

	c, rec := newContext(t, http.MethodGet, "/api/dashboard", nil, nil)
	c.Set("user_id", uint(9))
	require.NoError(t, GetDashboard(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		TotalRevenue      float64 `json:"total_revenue"`
		TotalOrderCount   int     `json:"total_order_count"`
		TotalProductCount int     `json:"total_product_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.InDelta(t, 59.99, summary.TotalRevenue, 0.001)
	assert.Equal(t, 2, summary.TotalOrderCount)
	assert.Equal(t, 7, summary.TotalProductCount)
}
