package http

import (
	"net/http"

	_ "foodordering/internal/adapters/in/http/docs" // registers the swagger document
	"foodordering/internal/generated/servers"
	"foodordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// NewRouter wires the API, health, metrics and swagger routes.
//
// Example:
//
//	e, err := http.NewRouter(server, m, logger)
//	if err != nil {
//	    return err
//	}
//	e.Logger.Fatal(e.Start(":8080"))
func NewRouter(server *Server, m *metrics.Metrics, logger *zap.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(RequestMetrics(m))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
