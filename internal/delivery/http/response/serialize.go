package response

import (
	"forkful/internal/domain/entity"
)

// UserView is the serialized projection of a user. The password hash has no
// field here and can never leak. Recipes appear only when explicitly included.
type UserView struct {
	ID       int           `json:"id"`
	Username string        `json:"username"`
	Bio      *string       `json:"bio"`
	ImageURL *string       `json:"image_url"`
	Recipes  []*RecipeView `json:"recipes,omitempty"`
}

// RecipeView is the serialized projection of a recipe, optionally nesting a
// reduced owner view.
type RecipeView struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Instructions      string    `json:"instructions"`
	MinutesToComplete int       `json:"minutes_to_complete"`
	User              *UserView `json:"user,omitempty"`
}

// NewUserView builds the user projection. When includeRecipes is set, the
// nested recipe views suppress their own user field to keep the mutual
// nesting bounded.
func NewUserView(user *entity.User, includeRecipes bool) *UserView {
	if user == nil {
		return nil
	}

	view := &UserView{
		ID:       user.ID,
		Username: user.Username,
		Bio:      user.Bio,
		ImageURL: user.ImageURL,
	}

	if includeRecipes {
		for _, recipe := range user.Recipes {
			view.Recipes = append(view.Recipes, NewRecipeView(recipe, false))
		}
	}

	return view
}

// NewRecipeView builds the recipe projection. When includeUser is set and the
// owner is loaded, a reduced user view (without recipes) is nested.
func NewRecipeView(recipe *entity.Recipe, includeUser bool) *RecipeView {
	if recipe == nil {
		return nil
	}

	view := &RecipeView{
		ID:                recipe.ID,
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
	}

	if includeUser && recipe.User != nil {
		view.User = NewUserView(recipe.User, false)
	}

	return view
}
