package service

// TokenSource issues opaque session tokens and derives their storage form.
type TokenSource interface {
	// NewToken returns a fresh, unguessable raw token for the client to hold.
	NewToken() string

	// HashToken derives the stable digest under which a raw token is stored.
	HashToken(raw string) string
}
