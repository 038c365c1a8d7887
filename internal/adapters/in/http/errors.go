package http

import (
	"errors"
	"fmt"
	"net/http"

	"freshcart/internal/generated/servers"
	"freshcart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusForKind maps errs.Kind codes to HTTP status codes.
func statusForKind(kind string) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindInvalidState, errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error body. Internal errors are logged and
// replaced by a generic message.
func (s *Server) fail(ctx echo.Context, err error) error {
	kind := errs.Kind(err)
	code := statusForKind(kind)

	message := errs.Message(err)
	if kind == errs.KindInternal {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(http.StatusInternalServerError)
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code), //nolint:gosec // HTTP status codes fit in int32
		Kind:    servers.ErrorKind(kind),
		Message: message,
	})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Kind:    servers.ErrorKindValidation,
		Message: message,
	})
}

// ErrorHandler renders errors that escape the handlers, such as routing
// failures, parameter binding errors and panics recovered by middleware, in
// the same body shape as handler errors.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	kind := servers.ErrorKindInternal
	switch {
	case code == http.StatusNotFound:
		kind = servers.ErrorKindNotFound
	case code < http.StatusInternalServerError:
		kind = servers.ErrorKindValidation
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, servers.Error{
		Code:    int32(code), //nolint:gosec // HTTP status codes fit in int32
		Kind:    kind,
		Message: message,
	})
}
