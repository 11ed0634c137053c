package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodordering/internal/generated/servers"
	"foodordering/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OpenAPIValidator rejects requests that do not match the OpenAPI document
// with 400. Routes absent from the document pass through untouched.
func OpenAPIValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// Match paths regardless of the host the service runs behind.
	swagger.Servers = nil

	router, err := legacyrouter.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(validationErr),
				})
			}
			return next(c)
		}
	}, nil
}

// validationMessage keeps the first line of a kin-openapi error, which names
// the offending field without dumping the schema.
func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if line, _, _ := strings.Cut(requestErr.Error(), "\n"); line != "" {
			return line
		}
	}
	line, _, _ := strings.Cut(err.Error(), "\n")
	return line
}

// RequestMetrics counts requests and observes their latency per route.
func RequestMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			m.Requests.WithLabelValues(route, strconv.Itoa(c.Response().Status)).Inc()
			m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
			return nil
		}
	}
}

// RequestLogger logs every request with zap.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	logger = logger.With(zap.String("component", "http"))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)))
			return nil
		}
	}
}
