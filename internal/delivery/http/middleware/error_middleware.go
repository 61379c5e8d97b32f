package middleware

import (
	"log/slog"
	"net/http"

	"forkful/internal/delivery/http/response"
	domainerrors "forkful/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
//
// The taxonomy is deliberately coarse: authorization failures become the 401
// shape, everything else that crosses the handler boundary collapses into the
// 422 shape carrying a single message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() == http.StatusUnauthorized {
			_ = response.Unauthorized(c, appErr.Message())

			return
		}

		_ = response.ValidationFailed(c, appErr.Message())

		return
	}

	// Check if it's Echo's HTTPError (unknown route, bad method, malformed body)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		_ = c.JSON(httpErr.Code, response.ErrorBody{Error: message})

		return
	}

	// Anything unexpected is logged and still surfaced through the 422
	// catch-all, message and all.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.ValidationFailed(c, err.Error())
}
