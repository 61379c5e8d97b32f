package impl

import (
	"context"
	"log/slog"

	"forkful/internal/domain/entity"
	"forkful/internal/domain/repository"
	"forkful/internal/usecase"

	"github.com/pkg/errors"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(
	txManager repository.TransactionManager,
	recipeRepo repository.RecipeRepository,
	logger *slog.Logger,
) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  txManager,
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

// List returns every recipe with its owner loaded.
func (srv *recipeService) List(ctx context.Context) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.List(ctx)
	if err != nil {
		srv.logger.Error("Failed to list recipes", "error", err.Error())

		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// Create validates and persists a recipe attached to the given user.
func (srv *recipeService) Create(ctx context.Context, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	srv.logger.Debug("Creating recipe", "title", input.Title, "userID", input.UserID)

	userID := input.UserID
	newRecipe := &entity.Recipe{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		UserID:            &userID,
	}

	// The length invariant runs before anything touches the store.
	if err := newRecipe.Validate(); err != nil {
		srv.logger.Warn("Recipe rejected", "title", input.Title, "error", err.Error())

		return nil, errors.Wrap(err, "recipe validation failed")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.WithStack(repoFactory.RecipeRepo().Create(ctx, newRecipe))
	})
	if err != nil {
		srv.logger.Warn("Failed to execute recipe creation transaction", "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute recipe creation transaction")
	}
	srv.logger.Debug("Recipe created", "recipeID", newRecipe.ID)

	return newRecipe, nil
}
