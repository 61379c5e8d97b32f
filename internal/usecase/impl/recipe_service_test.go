package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"forkful/internal/domain/entity"
	domainerrors "forkful/internal/domain/errors"
	"forkful/internal/domain/repository"
	mockRepo "forkful/internal/mocks/repository"
	"forkful/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeServiceFixture struct {
	txManager  *mockRepo.MockTransactionManager
	recipeRepo *mockRepo.MockRecipeRepository
	service    usecase.RecipeUsecase
}

func newRecipeServiceFixture(t *testing.T) *recipeServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &recipeServiceFixture{
		txManager:  txManager,
		recipeRepo: recipeRepo,
		service:    NewRecipeService(txManager, recipeRepo, logger),
	}
}

func validInstructions() string {
	return strings.Repeat("whisk the eggs and fold them in. ", 3)
}

func TestRecipeService_List_Success(t *testing.T) {
	f := newRecipeServiceFixture(t)
	ctx := context.Background()

	userID := 3
	stored := []*entity.Recipe{
		{
			ID:                1,
			Title:             "Omelette",
			Instructions:      validInstructions(),
			MinutesToComplete: 10,
			UserID:            &userID,
			User:              &entity.User{ID: userID, Username: "chef"},
		},
	}
	f.recipeRepo.EXPECT().List(ctx).Return(stored, nil)

	recipes, err := f.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Omelette", recipes[0].Title)
	require.NotNil(t, recipes[0].User)
	assert.Equal(t, "chef", recipes[0].User.Username)
}

func TestRecipeService_Create_Success(t *testing.T) {
	f := newRecipeServiceFixture(t)
	ctx := context.Background()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)
			mockRecipeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Recipe")).
				Run(func(ctx context.Context, recipe *entity.Recipe) {
					recipe.ID = 42
				}).
				Return(nil)

			return fn(mockFactory)
		})

	recipe, err := f.service.Create(ctx, &usecase.CreateRecipeInput{
		Title:             "Omelette",
		Instructions:      validInstructions(),
		MinutesToComplete: 10,
		UserID:            3,
	})

	require.NoError(t, err)
	assert.Equal(t, 42, recipe.ID)
	require.NotNil(t, recipe.UserID)
	assert.Equal(t, 3, *recipe.UserID)
}

func TestRecipeService_Create_ShortInstructions(t *testing.T) {
	f := newRecipeServiceFixture(t)
	ctx := context.Background()

	// The transaction manager must never run: validation fails first.
	recipe, err := f.service.Create(ctx, &usecase.CreateRecipeInput{
		Title:             "Omelette",
		Instructions:      "crack and fry",
		MinutesToComplete: 10,
		UserID:            3,
	})

	require.Error(t, err)
	assert.Nil(t, recipe)
	assert.ErrorIs(t, err, domainerrors.ErrInstructionsTooShort)
}

func TestRecipeService_Create_RepositoryFailure(t *testing.T) {
	f := newRecipeServiceFixture(t)
	ctx := context.Background()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "insert failed"))

	recipe, err := f.service.Create(ctx, &usecase.CreateRecipeInput{
		Title:             "Omelette",
		Instructions:      validInstructions(),
		MinutesToComplete: 10,
		UserID:            3,
	})

	require.Error(t, err)
	assert.Nil(t, recipe)
}
