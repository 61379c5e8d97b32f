package usecase

import (
	"context"

	"forkful/internal/domain/entity"
)

// CreateRecipeInput defines the data required to create a recipe.
// UserID comes from the caller's session, never from the request body.
type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete int
	UserID            int
}

// RecipeUsecase defines the interface for recipe-related business operations.
type RecipeUsecase interface {
	// List returns every recipe with its owner loaded, regardless of caller.
	List(ctx context.Context) ([]*entity.Recipe, error)

	// Create validates and persists a recipe attached to the given user.
	Create(ctx context.Context, input *CreateRecipeInput) (*entity.Recipe, error)
}
