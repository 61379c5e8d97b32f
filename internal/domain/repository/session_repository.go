package repository

import (
	"context"
	"errors"

	"forkful/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session matches the presented token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository maps opaque token digests to logged-in users.
// Sessions have no expiry; they exist until explicitly cleared.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves the session stored under the given digest.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash invalidates the session stored under the given digest.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteAllForUser invalidates every session belonging to a user.
	DeleteAllForUser(ctx context.Context, userID int) error
}
