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

// sessionService implements the SessionUsecase interface.
// It talks to the session repository directly: the backend may be the
// relational sessions table or redis, both behind the same interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	tokens      service.TokenSource
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	tokens service.TokenSource,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Create starts a session for the user and returns the raw token.
func (srv *sessionService) Create(ctx context.Context, userID int) (string, error) {
	token := srv.tokens.NewToken()

	session := &entity.Session{
		UserID:    userID,
		TokenHash: srv.tokens.HashToken(token),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.logger.Error("Failed to create session", "error", err.Error(), "userID", userID)

		return "", errors.Wrap(err, "failed to create session")
	}
	srv.logger.Debug("Session started", "userID", userID)

	return token, nil
}

// Read resolves a raw token to the stored user id.
func (srv *sessionService) Read(ctx context.Context, token string) (int, error) {
	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokens.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return 0, errors.Wrap(domainerrors.ErrUnauthorized, "unknown session token")
		}

		return 0, errors.Wrap(err, "failed to read session")
	}

	return session.UserID, nil
}

// Clear invalidates the session identified by the raw token.
func (srv *sessionService) Clear(ctx context.Context, token string) error {
	err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokens.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "unknown session token")
		}

		return errors.Wrap(err, "failed to clear session")
	}
	srv.logger.Debug("Session cleared")

	return nil
}
