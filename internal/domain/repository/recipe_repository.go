package repository

import (
	"context"

	"forkful/internal/domain/entity"
)

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// List retrieves all recipes with their owning user loaded.
	// The listing is global: no ownership filter is applied.
	List(ctx context.Context) ([]*entity.Recipe, error)

	// Create persists a new recipe entity to the storage.
	Create(ctx context.Context, recipe *entity.Recipe) error
}
