package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var securitySchemeRoles = map[string]Role{
	"customerSession": RoleCustomer,
	"staffSession":    RoleStaff,
}

// OpenAPIValidator checks requests against swagger before they reach the
// handlers. Security requirements are enforced through sessions, which also
// put the caller on the context. Requests for paths the document does not
// describe pass through untouched.
func OpenAPIValidator(swagger *openapi3.T, sessions *SessionManager) (echo.MiddlewareFunc, error) {
	swagger.Servers = nil
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: func(_ context.Context, in *openapi3filter.AuthenticationInput) error {
						role, ok := securitySchemeRoles[in.SecuritySchemeName]
						if !ok {
							return errs.NewUnauthorizedError("unsupported security scheme " + in.SecuritySchemeName)
						}
						return sessions.authenticate(c, role)
					},
				},
			}

			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return validationError(err)
			}
			return next(c)
		}
	}, nil
}

func validationError(err error) error {
	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		for _, cause := range securityErr.Errors {
			if errors.Is(cause, errs.ErrUnauthorized) {
				return cause
			}
		}
		return errs.NewUnauthorizedErrorWithCause("session is required", err)
	}
	return echo.NewHTTPError(http.StatusBadRequest, firstLine(err.Error()))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// RequestLogger logs one zap entry per request and records the HTTP metrics.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.ObserveHTTPRequest(v.Method, route, v.Status, v.Latency)

			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.String("route", route),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				logger.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		},
	})
}

var loginRoutes = map[string]struct{}{
	"/api/v1/auth/liff":   {},
	"/api/v1/admin/login": {},
}

const loginBurst = 5

// LoginRateLimiter throttles sign-in attempts per client IP. A non-positive
// perSecond disables it.
func LoginRateLimiter(perSecond float64) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     loginBurst,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			if c.Request().Method != http.MethodPost {
				return true
			}
			_, ok := loginRoutes[c.Path()]
			return !ok
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
		},
	})
}
