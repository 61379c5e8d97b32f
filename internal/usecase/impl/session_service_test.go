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

type sessionServiceFixture struct {
	sessionRepo *mockRepo.MockSessionRepository
	tokens      *mockService.MockTokenSource
	service     usecase.SessionUsecase
}

func newSessionServiceFixture(t *testing.T) *sessionServiceFixture {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokens := mockService.NewMockTokenSource(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &sessionServiceFixture{
		sessionRepo: sessionRepo,
		tokens:      tokens,
		service:     NewSessionService(sessionRepo, tokens, logger),
	}
}

func TestSessionService_Create_Success(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().NewToken().Return("raw-token")
	f.tokens.EXPECT().HashToken("raw-token").Return("token-digest")
	f.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, 3, session.UserID)
			assert.Equal(t, "token-digest", session.TokenHash)
		}).
		Return(nil)

	token, err := f.service.Create(ctx, 3)

	require.NoError(t, err)
	// The caller gets the raw token, never the digest.
	assert.Equal(t, "raw-token", token)
}

func TestSessionService_Read_Success(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().HashToken("raw-token").Return("token-digest")
	f.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "token-digest").
		Return(&entity.Session{UserID: 3, TokenHash: "token-digest"}, nil)

	userID, err := f.service.Read(ctx, "raw-token")

	require.NoError(t, err)
	assert.Equal(t, 3, userID)
}

func TestSessionService_Read_UnknownToken(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().HashToken("stale-token").Return("stale-digest")
	f.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "stale-digest").
		Return(nil, repository.ErrSessionNotFound)

	userID, err := f.service.Read(ctx, "stale-token")

	require.Error(t, err)
	assert.Zero(t, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_Clear_Success(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().HashToken("raw-token").Return("token-digest")
	f.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-digest").Return(nil)

	require.NoError(t, f.service.Clear(ctx, "raw-token"))
}

func TestSessionService_Clear_UnknownToken(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().HashToken("stale-token").Return("stale-digest")
	f.sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, "stale-digest").
		Return(repository.ErrSessionNotFound)

	err := f.service.Clear(ctx, "stale-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
