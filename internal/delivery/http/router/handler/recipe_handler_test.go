package handler

import (
	"io"
	"log/slog"
	"net/http"
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

type recipeHandlerFixture struct {
	echo     *echo.Echo
	recipes  *mockUsecase.MockRecipeUsecase
	sessions *mockUsecase.MockSessionUsecase
}

func newRecipeHandlerFixture(t *testing.T) *recipeHandlerFixture {
	recipes := mockUsecase.NewMockRecipeUsecase(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: testCookieName}}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = forkfulmw.NewErrorMiddleware(logger).HandleHTTPError

	h := NewRecipeHandler(recipes, logger)
	authMW := forkfulmw.NewAuthMiddleware(sessions, cfg)

	recipeGroup := e.Group("/recipes")
	recipeGroup.Use(authMW.Authenticate)
	recipeGroup.GET("", h.List)
	recipeGroup.POST("", h.Create)

	return &recipeHandlerFixture{echo: e, recipes: recipes, sessions: sessions}
}

func (f *recipeHandlerFixture) login(token string, userID int) *http.Cookie {
	f.sessions.EXPECT().Read(mock.Anything, token).Return(userID, nil)

	return &http.Cookie{Name: testCookieName, Value: token}
}

func TestRecipeHandler_List_Unauthenticated(t *testing.T) {
	f := newRecipeHandlerFixture(t)

	rec := doJSON(f.echo, http.MethodGet, "/recipes", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRecipeHandler_List_Success(t *testing.T) {
	f := newRecipeHandlerFixture(t)
	cookie := f.login("raw-token", 3)

	ownerID := 3
	instructions := strings.Repeat("whisk the eggs and fold them gently in. ", 2)
	f.recipes.EXPECT().List(mock.Anything).Return([]*entity.Recipe{
		{
			ID:                10,
			Title:             "Omelette",
			Instructions:      instructions,
			MinutesToComplete: 10,
			UserID:            &ownerID,
			User:              &entity.User{ID: 3, Username: "chef"},
		},
	}, nil)

	rec := doJSON(f.echo, http.MethodGet, "/recipes", "", cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{
			"id": 10,
			"title": "Omelette",
			"instructions": "`+instructions+`",
			"minutes_to_complete": 10,
			"user": {"id": 3, "username": "chef", "bio": null, "image_url": null}
		}
	]`, rec.Body.String())
}

func TestRecipeHandler_List_Empty(t *testing.T) {
	f := newRecipeHandlerFixture(t)
	cookie := f.login("raw-token", 3)

	f.recipes.EXPECT().List(mock.Anything).Return(nil, nil)

	rec := doJSON(f.echo, http.MethodGet, "/recipes", "", cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRecipeHandler_Create_Success(t *testing.T) {
	f := newRecipeHandlerFixture(t)
	cookie := f.login("raw-token", 3)

	instructions := strings.Repeat("whisk the eggs and fold them gently in. ", 2)
	ownerID := 3
	f.recipes.EXPECT().
		Create(mock.Anything, &usecase.CreateRecipeInput{
			Title:             "Omelette",
			Instructions:      instructions,
			MinutesToComplete: 10,
			UserID:            3,
		}).
		Return(&entity.Recipe{
			ID:                42,
			Title:             "Omelette",
			Instructions:      instructions,
			MinutesToComplete: 10,
			UserID:            &ownerID,
		}, nil)

	rec := doJSON(f.echo, http.MethodPost, "/recipes",
		`{"title":"Omelette","instructions":"`+instructions+`","minutes_to_complete":10}`, cookie)

	assert.Equal(t, http.StatusCreated, rec.Code)
	// The creation response carries the recipe alone, without a nested user.
	assert.JSONEq(t, `{
		"id": 42,
		"title": "Omelette",
		"instructions": "`+instructions+`",
		"minutes_to_complete": 10
	}`, rec.Body.String())
}

func TestRecipeHandler_Create_ShortInstructions(t *testing.T) {
	f := newRecipeHandlerFixture(t)
	cookie := f.login("raw-token", 3)

	f.recipes.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateRecipeInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInstructionsTooShort, "recipe validation failed"))

	rec := doJSON(f.echo, http.MethodPost, "/recipes",
		`{"title":"Omelette","instructions":"crack and fry","minutes_to_complete":10}`, cookie)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":["Instructions must be at least 50 characters long."]}`, rec.Body.String())
}

func TestRecipeHandler_Create_MissingTitle(t *testing.T) {
	f := newRecipeHandlerFixture(t)
	cookie := f.login("raw-token", 3)

	instructions := strings.Repeat("whisk the eggs and fold them gently in. ", 2)
	rec := doJSON(f.echo, http.MethodPost, "/recipes",
		`{"instructions":"`+instructions+`","minutes_to_complete":10}`, cookie)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "errors")
}

func TestRecipeHandler_Create_Unauthenticated(t *testing.T) {
	f := newRecipeHandlerFixture(t)

	rec := doJSON(f.echo, http.MethodPost, "/recipes",
		`{"title":"Omelette","instructions":"whatever","minutes_to_complete":10}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}
