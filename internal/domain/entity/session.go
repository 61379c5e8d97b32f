package entity

import "time"

// Session represents a server-side login session. The client holds the raw
// opaque token in a cookie; only its SHA-256 hash is stored for comparison.
// Sessions carry no expiry: they live until an explicit logout clears them.
type Session struct {
	ID        int       // Database-generated identifier.
	UserID    int       // The logged-in user this session belongs to.
	TokenHash string    // SHA-256 hex digest of the raw session token.
	CreatedAt time.Time // Timestamp of when the session was started.
}
