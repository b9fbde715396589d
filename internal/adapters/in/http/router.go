package http

import (
	"log/slog"
	"net/http"

	"myfood/internal/adapters/in/http/api"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

const BaseURL = "/api/v1"

// RouterConfig tunes the middleware chain. A zero RateLimitRPS disables rate limiting.
type RouterConfig struct {
	RateLimitRPS float64
}

// NewRouter builds the echo instance: request id, access log, recovery,
// optional rate limiting and OpenAPI validation in front of the API routes,
// plus /health and /swagger/*.
func NewRouter(si ServerInterface, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := loadOpenAPI(api.OpenAPI)
	if err != nil {
		return nil, err
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	registerDoc(api.OpenAPI)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger.With("component", "http_access")))
	e.Use(middleware.Recover())
	if cfg.RateLimitRPS > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS))))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlersWithBaseURL(e.Group(BaseURL, validator), si, "")
	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("error", v.Error),
			)
			return nil
		},
	})
}
