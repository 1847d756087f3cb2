package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerDevelopment(t *testing.T) {
	cfg := &config.Config{
		ServiceName: "storefront-service",
		Server:      config.ServerConfig{Env: "development"},
		Log:         config.LogConfig{Level: "debug"},
	}

	require.NoError(t, InitLogger(cfg))
	defer func() { log = nil }()

	assert.True(t, GetLogger().Core().Enabled(zapcore.DebugLevel))
}

func TestInitLoggerProduction(t *testing.T) {
	cfg := &config.Config{
		ServiceName: "storefront-service",
		Server:      config.ServerConfig{Env: "production"},
		Log:         config.LogConfig{Level: "warn"},
	}

	require.NoError(t, InitLogger(cfg))
	defer func() { log = nil }()

	assert.True(t, GetLogger().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, GetLogger().Core().Enabled(zapcore.InfoLevel))
}

func TestGetLoggerUninitialized(t *testing.T) {
	log = nil
	assert.NotNil(t, GetLogger())
}

func TestWithContextRoundTrip(t *testing.T) {
	attached := zap.NewNop().With(zap.String("request_id", "abc"))

	ctx := WithContext(context.Background(), attached)

	assert.Same(t, attached, FromContext(ctx))
}

func TestFromContextFallback(t *testing.T) {
	log = nil
	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromEcho(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	// Bare context falls back to the global logger
	assert.NotNil(t, FromEcho(c))

	attached := zap.NewNop()
	c.Set("logger", attached)
	assert.Same(t, attached, FromEcho(c))
}
