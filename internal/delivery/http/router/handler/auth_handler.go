// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"forkful/config"
	"forkful/internal/delivery/http/middleware"
	"forkful/internal/delivery/http/response"
	domainerrors "forkful/internal/domain/errors"
	"forkful/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for signup, login and session handlers.
type AuthHandler struct {
	accounts usecase.AccountUsecase
	sessions usecase.SessionUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(accounts usecase.AccountUsecase, sessions usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"image_url"`
}

// LoginRequest is the body of POST /login.
// Presence is checked in the use case so missing credentials surface as 401.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /signup: create the account, start a session, return
// the serialized user.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input SignupRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.accounts.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: input.Username,
		Password: input.Password,
		Bio:      input.Bio,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.startSession(c, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewUserView(user, false))
}

// Login handles POST /login: verify credentials, start a session, return the
// serialized user.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage("invalid login input")
	}

	user, err := h.accounts.Login(c.Request().Context(), &usecase.LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.startSession(c, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewUserView(user, false))
}

// CheckSession handles GET /check_session: resolve the cookie back to the
// current user, or answer with the 401 shape.
func (h *AuthHandler) CheckSession(c echo.Context) error {
	cookie, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c, "Unauthorized")
	}

	ctx := c.Request().Context()
	userID, err := h.sessions.Read(ctx, cookie.Value)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.accounts.CurrentUser(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewUserView(user, false))
}

// Logout handles DELETE /logout. It runs behind the auth middleware, so a
// session is known to exist; clear it and drop the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get(middleware.ContextSessionTokenKey).(string)
	if !ok || token == "" {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.sessions.Clear(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}
	h.expireCookie(c)

	return c.NoContent(http.StatusNoContent)
}

// startSession issues a session token and sets it as the session cookie.
func (h *AuthHandler) startSession(c echo.Context, userID int) error {
	token, err := h.sessions.Create(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// expireCookie asks the client to discard the session cookie.
func (h *AuthHandler) expireCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
