package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"forkful/internal/domain/entity"
	domainerrors "forkful/internal/domain/errors"
	"forkful/internal/domain/repository"
	mockRepo "forkful/internal/mocks/repository"
	mockService "forkful/internal/mocks/service"
	"forkful/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixture struct {
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockService.MockPasswordHasher
	service     usecase.AccountUsecase
}

func newAccountServiceFixture(t *testing.T) *accountServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &accountServiceFixture{
		txManager:   txManager,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		service:     NewAccountService(txManager, userRepo, sessionRepo, hasher, logger),
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByUsername(ctx, "chef").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 1
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	bio := "I cook"
	user, err := f.service.Signup(ctx, &usecase.SignupInput{
		Username: "chef",
		Password: "secret123",
		Bio:      &bio,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "chef", user.Username)
	assert.Equal(t, "hashed-secret", user.PasswordHash)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "I cook", *user.Bio)
	assert.Nil(t, user.ImageURL)
}

func TestAccountService_Signup_ShortPassword(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	// Neither the hasher nor the transaction manager may be touched.
	user, err := f.service.Signup(ctx, &usecase.SignupInput{
		Username: "chef",
		Password: "12345",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAccountService_Signup_UsernameTaken(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByUsername(ctx, "chef").
				Return(&entity.User{ID: 7, Username: "chef"}, nil)

			return fn(mockFactory)
		})

	user, err := f.service.Signup(ctx, &usecase.SignupInput{
		Username: "chef",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, user)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUsernameTaken.Message(), appErr.Message())
}

func TestAccountService_Login_Success(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	stored := &entity.User{ID: 3, Username: "chef", PasswordHash: "hashed-secret"}
	f.userRepo.EXPECT().FindByUsername(ctx, "chef").Return(stored, nil)
	f.hasher.EXPECT().Check("secret123", "hashed-secret").Return(true)

	user, err := f.service.Login(ctx, &usecase.LoginInput{Username: "chef", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)
}

func TestAccountService_Login_MissingCredentials(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.LoginInput
	}{
		{name: "no username", input: &usecase.LoginInput{Password: "secret123"}},
		{name: "no password", input: &usecase.LoginInput{Username: "chef"}},
		{name: "neither", input: &usecase.LoginInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := f.service.Login(ctx, tt.input)

			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
		})
	}
}

func TestAccountService_Login_UnknownUsername(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	user, err := f.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "secret123"})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	stored := &entity.User{ID: 3, Username: "chef", PasswordHash: "hashed-secret"}
	f.userRepo.EXPECT().FindByUsername(ctx, "chef").Return(stored, nil)
	f.hasher.EXPECT().Check("wrong", "hashed-secret").Return(false)

	user, err := f.service.Login(ctx, &usecase.LoginInput{Username: "chef", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_CurrentUser_Success(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	stored := &entity.User{ID: 3, Username: "chef"}
	f.userRepo.EXPECT().FindByID(ctx, 3).Return(stored, nil)

	user, err := f.service.CurrentUser(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, "chef", user.Username)
}

func TestAccountService_CurrentUser_VanishedAccount(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, 3).Return(nil, repository.ErrUserNotFound)

	user, err := f.service.CurrentUser(ctx, 3)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, 3).Return(&entity.User{ID: 3}, nil)
			mockUserRepo.EXPECT().Delete(ctx, 3).Return(nil)

			return fn(mockFactory)
		})
	f.sessionRepo.EXPECT().DeleteAllForUser(ctx, 3).Return(nil)

	require.NoError(t, f.service.DeleteAccount(ctx, 3))
}
