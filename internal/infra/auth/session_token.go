package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"forkful/internal/domain/service"
)

// uuidTokenSource issues random UUID session tokens. The raw token travels in
// the client's cookie; only its SHA-256 digest is ever handed to a store.
type uuidTokenSource struct{}

// NewTokenSource is the constructor for uuidTokenSource.
func NewTokenSource() service.TokenSource {
	return &uuidTokenSource{}
}

// NewToken returns a fresh random token.
func (s *uuidTokenSource) NewToken() string {
	return uuid.NewString()
}

// HashToken derives the hex SHA-256 digest a token is stored under.
func (s *uuidTokenSource) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
