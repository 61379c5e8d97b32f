package handler

import (
	"log/slog"
	"net/http"

	"forkful/internal/delivery/http/middleware"
	"forkful/internal/delivery/http/response"
	domainerrors "forkful/internal/domain/errors"
	"forkful/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	recipes usecase.RecipeUsecase
	logger  *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(recipes usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		logger:  logger,
	}
}

// CreateRecipeRequest is the body of POST /recipes.
type CreateRecipeRequest struct {
	Title             string `json:"title" validate:"required"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete" validate:"required"`
}

// List handles GET /recipes: the global listing, each recipe with its owner.
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.recipes.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*response.RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		views = append(views, response.NewRecipeView(recipe, true))
	}

	return c.JSON(http.StatusOK, views)
}

// Create handles POST /recipes: build a recipe attached to the session's user.
func (h *RecipeHandler) Create(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserIDKey).(int)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input CreateRecipeRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid recipe input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	recipe, err := h.recipes.Create(c.Request().Context(), &usecase.CreateRecipeInput{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		UserID:            userID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewRecipeView(recipe, false))
}
