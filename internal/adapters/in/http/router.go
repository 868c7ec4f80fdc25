package http

import (
	"context"
	"net/http"
	"time"

	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const (
	requestBodyLimit  = "1M"
	readinessTimeout  = 2 * time.Second
	healthyResponse   = "Healthy"
	unhealthyResponse = "Unhealthy"
)

// RouterConfig carries what NewRouter needs besides the Server itself.
type RouterConfig struct {
	Sessions       *SessionManager
	Logger         *zap.Logger
	LoginRateLimit float64
	// Ready reports whether dependencies are reachable; nil means always.
	Ready func(ctx context.Context) error
}

// NewRouter builds the echo instance serving the API, health, metrics and
// Swagger UI routes.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(swagger, cfg.Sessions)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(
		middleware.RequestID(),
		RequestLogger(cfg.Logger),
		middleware.Recover(),
		middleware.BodyLimit(requestBodyLimit),
		LoginRateLimiter(cfg.LoginRateLimit),
		validator,
	)

	e.GET("/health", func(c echo.Context) error {
		if cfg.Ready != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
			defer cancel()
			if err := cfg.Ready(ctx); err != nil {
				cfg.Logger.Warn("health check failed", zap.Error(err))
				return c.String(http.StatusServiceUnavailable, unhealthyResponse)
			}
		}
		return c.String(http.StatusOK, healthyResponse)
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
