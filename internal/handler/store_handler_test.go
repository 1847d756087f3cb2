package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-service/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateStoreOnePerOwner(t *testing.T) {
	setupTestDB(t)

	c, rec := newJSONContext(t, http.MethodPost, "/api/stores", `{"name":"Mi Tienda"}`)
	c.Set("user_id", uint(9))
	require.NoError(t, CreateStore(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newJSONContext(t, http.MethodPost, "/api/stores", `{"name":"Otra Tienda"}`)
	c.Set("user_id", uint(9))
	require.NoError(t, CreateStore(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetMyStoreEmptyState(t *testing.T) {
	setupTestDB(t)

	c, rec := newContext(t, http.MethodGet, "/api/stores/me", nil, nil)
	c.Set("user_id", uint(9))
	require.NoError(t, GetMyStore(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMyStoreReplacesProfile(t *testing.T) {
	db := setupTestDB(t)

	domain := "mitienda.example.com"
	require.NoError(t, db.Create(&model.Store{
		OwnerID:     9,
		Name:        "Mi Tienda",
		Description: "Ropa",
		Domain:      &domain,
		LogoURL:     "https://example.com/logo.png",
	}).Error)

	// Fields omitted from the replacement clear rather than survive
	c, rec := newJSONContext(t, http.MethodPut, "/api/stores/me", `{"name":"Tienda Nueva"}`)
	c.Set("user_id", uint(9))
	require.NoError(t, UpdateMyStore(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Store
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Tienda Nueva", got.Name)
	assert.Empty(t, got.Description)
	assert.Nil(t, got.Domain)
	assert.Empty(t, got.LogoURL)
}

func TestUpdateMyStoreRequiresName(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&model.Store{OwnerID: 9, Name: "Mi Tienda"}).Error)

	c, rec := newJSONContext(t, http.MethodPut, "/api/stores/me", `{"description":"sin nombre"}`)
	c.Set("user_id", uint(9))
	require.NoError(t, UpdateMyStore(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
