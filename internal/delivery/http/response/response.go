// Package response owns the exact wire shapes of the API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorsBody is the 422 shape: a list of validation failure messages.
type ErrorsBody struct {
	Errors []string `json:"errors"`
}

// ErrorBody is the 401 shape: a single error message.
type ErrorBody struct {
	Error string `json:"error"`
}

// ValidationFailed writes the 422 shape carrying a single message.
func ValidationFailed(c echo.Context, message string) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorsBody{Errors: []string{message}})
}

// Unauthorized writes the 401 shape.
func Unauthorized(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}

	return c.JSON(http.StatusUnauthorized, ErrorBody{Error: message})
}
