package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"forkful/config"
	forkfulmw "forkful/internal/delivery/http/middleware"
	"forkful/internal/delivery/http/validator"
	"forkful/internal/domain/entity"
	domainerrors "forkful/internal/domain/errors"
	mockUsecase "forkful/internal/mocks/usecase"
	"forkful/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "forkful_session"

type authHandlerFixture struct {
	echo     *echo.Echo
	accounts *mockUsecase.MockAccountUsecase
	sessions *mockUsecase.MockSessionUsecase
}

func newAuthHandlerFixture(t *testing.T) *authHandlerFixture {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: testCookieName}}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = forkfulmw.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(accounts, sessions, cfg, logger)
	authMW := forkfulmw.NewAuthMiddleware(sessions, cfg)

	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
	e.GET("/check_session", h.CheckSession)
	e.DELETE("/logout", h.Logout, authMW.Authenticate)

	return &authHandlerFixture{echo: e, accounts: accounts, sessions: sessions}
}

func doJSON(e *echo.Echo, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)

	created := &entity.User{ID: 1, Username: "chef", PasswordHash: "hashed-secret"}
	f.accounts.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Username: "chef", Password: "secret123"}).
		Return(created, nil)
	f.sessions.EXPECT().Create(mock.Anything, 1).Return("raw-token", nil)

	rec := doJSON(f.echo, http.MethodPost, "/signup", `{"username":"chef","password":"secret123"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"username":"chef","bio":null,"image_url":null}`, rec.Body.String())

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "raw-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.accounts.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, errors.Wrap(domainerrors.ErrPasswordTooShort, "signup failed"))

	rec := doJSON(f.echo, http.MethodPost, "/signup", `{"username":"chef","password":"123"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":["Password must be at least 6 characters long."]}`, rec.Body.String())
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthHandler_Signup_UsernameTaken(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.accounts.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.ErrUsernameTaken.WrapMessage("signup failed"))

	rec := doJSON(f.echo, http.MethodPost, "/signup", `{"username":"chef","password":"secret123"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":["Username has already been taken."]}`, rec.Body.String())
}

func TestAuthHandler_Signup_MissingUsername(t *testing.T) {
	f := newAuthHandlerFixture(t)

	rec := doJSON(f.echo, http.MethodPost, "/signup", `{"password":"secret123"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)

	bio := "I cook"
	stored := &entity.User{ID: 3, Username: "chef", Bio: &bio}
	f.accounts.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "chef", Password: "secret123"}).
		Return(stored, nil)
	f.sessions.EXPECT().Create(mock.Anything, 3).Return("raw-token", nil)

	rec := doJSON(f.echo, http.MethodPost, "/login", `{"username":"chef","password":"secret123"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"username":"chef","bio":"I cook","image_url":null}`, rec.Body.String())
	require.NotNil(t, sessionCookie(rec))
}

func TestAuthHandler_Login_MissingCredentials(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.accounts.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "chef"}).
		Return(nil, errors.Wrap(domainerrors.ErrMissingCredentials, "login failed"))

	rec := doJSON(f.echo, http.MethodPost, "/login", `{"username":"chef"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Missing username or password"}`, rec.Body.String())
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.accounts.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "chef", Password: "wrong"}).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	rec := doJSON(f.echo, http.MethodPost, "/login", `{"username":"chef","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthHandler_CheckSession_NoCookie(t *testing.T) {
	f := newAuthHandlerFixture(t)

	rec := doJSON(f.echo, http.MethodGet, "/check_session", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestAuthHandler_CheckSession_StaleToken(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.sessions.EXPECT().
		Read(mock.Anything, "stale-token").
		Return(0, errors.Wrap(domainerrors.ErrUnauthorized, "unknown session token"))

	rec := doJSON(f.echo, http.MethodGet, "/check_session", "",
		&http.Cookie{Name: testCookieName, Value: "stale-token"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestAuthHandler_CheckSession_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.sessions.EXPECT().Read(mock.Anything, "raw-token").Return(3, nil)
	f.accounts.EXPECT().
		CurrentUser(mock.Anything, 3).
		Return(&entity.User{ID: 3, Username: "chef"}, nil)

	rec := doJSON(f.echo, http.MethodGet, "/check_session", "",
		&http.Cookie{Name: testCookieName, Value: "raw-token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"username":"chef","bio":null,"image_url":null}`, rec.Body.String())
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.sessions.EXPECT().Read(mock.Anything, "raw-token").Return(3, nil)
	f.sessions.EXPECT().Clear(mock.Anything, "raw-token").Return(nil)

	rec := doJSON(f.echo, http.MethodDelete, "/logout", "",
		&http.Cookie{Name: testCookieName, Value: "raw-token"})

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Logout_NoSession(t *testing.T) {
	f := newAuthHandlerFixture(t)

	rec := doJSON(f.echo, http.MethodDelete, "/logout", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}
