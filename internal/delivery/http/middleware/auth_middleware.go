package middleware

import (
	"forkful/config"
	"forkful/internal/delivery/http/response"
	"forkful/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys shared between the middleware and the handlers.
const (
	ContextUserIDKey       = "userID"
	ContextSessionTokenKey = "sessionToken"
)

// AuthMiddleware guards routes behind a valid session cookie.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cfg: cfg}
}

// Authenticate resolves the session cookie to a user id.
// Requests without a resolvable session are rejected with the 401 shape.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, "Unauthorized")
		}

		userID, err := m.sessions.Read(c.Request().Context(), cookie.Value)
		if err != nil {
			return response.Unauthorized(c, "Unauthorized")
		}

		// Set session info on the context for handlers to use
		c.Set(ContextUserIDKey, userID)
		c.Set(ContextSessionTokenKey, cookie.Value)

		return next(c)
	}
}
