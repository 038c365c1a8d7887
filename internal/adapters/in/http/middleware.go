package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"freshcart/internal/generated/servers"
	"freshcart/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const apiPrefix = "/api/"

// RequestValidator checks API requests against the OpenAPI document before
// they reach the handlers. Requests outside /api/ are passed through.
// Path parameters and bodies that violate the schema are answered with 400.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// The servers list would make the router match on host as well.
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError:         false,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if !strings.HasPrefix(req.URL.Path, apiPrefix) {
				return next(ctx)
			}

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return echo.NewHTTPError(http.StatusMethodNotAllowed, findErr.Error())
				}
				return echo.NewHTTPError(http.StatusNotFound, findErr.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(validationErr))
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return "invalid parameter " + reqErr.Parameter.Name
		}
		if reqErr.RequestBody != nil {
			return "invalid request body: " + firstLine(reqErr.Err)
		}
	}
	return firstLine(err)
}

func firstLine(err error) string {
	if err == nil {
		return ""
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}

// RequestMetrics records the latency of every request by route template.
func RequestMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			code := ctx.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) {
				code = he.Code
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTPRequest(ctx.Request().Method, route, code, time.Since(start))
			return err
		}
	}
}

// RequestLogger forwards echo's request log to slog.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}

// Register wires the API routes and their middleware onto e.
func Register(e *echo.Echo, server *Server, m *metrics.Metrics, logger *slog.Logger) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}

	validator, err := RequestValidator(swagger)
	if err != nil {
		return err
	}

	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(RequestMetrics(m))
	e.Use(validator)

	servers.RegisterHandlers(e, server)
	return nil
}
