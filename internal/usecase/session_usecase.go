package usecase

import "context"

// SessionUsecase is the explicit session store contract handlers depend on.
// A session maps an opaque client-held token to a logged-in user id.
// No expiry semantics: a session lives until Clear is called with its token.
type SessionUsecase interface {
	// Create starts a session for the user and returns the raw token
	// destined for the client's cookie.
	Create(ctx context.Context, userID int) (string, error)

	// Read resolves a raw token to the stored user id.
	Read(ctx context.Context, token string) (int, error)

	// Clear invalidates the session identified by the raw token.
	Clear(ctx context.Context, token string) error
}
