// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"forkful/internal/domain/entity"
	domainerrors "forkful/internal/domain/errors"
	"forkful/internal/domain/repository"
	"forkful/internal/domain/service"
	"forkful/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:   txManager,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

// Signup orchestrates the complete account registration process.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	srv.logger.Info("Starting signup", "username", input.Username)

	// Construction validates before any write is attempted.
	newUser := &entity.User{
		Username: input.Username,
		Bio:      input.Bio,
		ImageURL: input.ImageURL,
	}
	if err := newUser.SetPassword(input.Password, srv.hasher); err != nil {
		srv.logger.Warn("Signup rejected", "username", input.Username, "error", err.Error())

		return nil, errors.Wrap(err, "signup failed")
	}

	// The whole creation runs inside a single database transaction
	// to ensure data consistency (atomicity).
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Check whether the username is already taken.
		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			// If no error, an account with this username exists.
			return domainerrors.ErrUsernameTaken.WrapMessage("signup failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		// 2. Persist the new account. The unique constraint backs up the
		// check above for concurrent signups.
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to execute signup transaction", "error", err.Error(), "username", input.Username)

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}
	srv.logger.Debug("User signed up successfully", "userID", newUser.ID)

	return newUser, nil
}

// Login verifies the credentials and returns the matching user.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	srv.logger.Debug("Starting login", "username", input.Username)

	if input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		// Unknown usernames and bad passwords are indistinguishable to the client.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !user.Authenticate(input.Password, srv.hasher) {
		srv.logger.Warn("Login failed", "username", input.Username)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return user, nil
}

// CurrentUser resolves a session's user id back to the full account.
func (srv *accountService) CurrentUser(ctx context.Context, userID int) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		// A session pointing at a vanished account is no session at all.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// DeleteAccount removes the account together with its recipes and sessions.
func (srv *accountService) DeleteAccount(ctx context.Context, userID int) error {
	srv.logger.Info("Deleting account", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		return errors.WithStack(userRepo.Delete(ctx, userID))
	})
	if err != nil {
		srv.logger.Error("Failed to execute account deletion transaction", "error", err.Error(), "userID", userID)

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	// Sessions may live outside the relational store (redis backend), so the
	// purge goes through the session repository as well.
	if err := srv.sessionRepo.DeleteAllForUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to purge account sessions")
	}

	return nil
}
