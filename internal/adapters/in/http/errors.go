package http

import (
	"errors"
	"net/http"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/generated/servers"
	"foodordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps an application error to an HTTP status. Business rule
// violations and invalid input are client errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrDomain),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, dto.ErrItemsAreRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err))
		message = http.StatusText(http.StatusInternalServerError)
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

// countRejection records orders refused by a business rule, labelled by rule.
func (s *Server) countRejection(err error) {
	var domainErr *errs.DomainError
	if errors.As(err, &domainErr) && domainErr.Kind != nil {
		s.metrics.OrdersRejected.WithLabelValues(domainErr.Kind.Error()).Inc()
	}
}
