// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	domainerrors "forkful/internal/domain/errors"
	"forkful/internal/domain/service"
)

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 6

// User is the core entity in the system, representing a registered account.
// PasswordHash is only ever a derived bcrypt hash; the plaintext is never stored
// and the hash never leaves the server in a serialized form.
type User struct {
	ID           int       // Database-generated identifier.
	Username     string    // Unique login name, required.
	PasswordHash string    // Derived credential hash. Empty for accounts that never set one.
	Bio          *string   // Optional free-form description.
	ImageURL     *string   // Optional avatar URL.
	Recipes      []*Recipe // Recipes owned by this user. Deleted together with the user.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// SetPassword validates the plaintext and stores its derived hash.
// Empty or too-short passwords are rejected before any hashing happens.
func (u *User) SetPassword(plaintext string, hasher service.PasswordHasher) error {
	if len(plaintext) < MinPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}

	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = hash

	return nil
}

// Authenticate reports whether the plaintext matches the stored hash.
// An account without a stored hash never authenticates.
func (u *User) Authenticate(plaintext string, hasher service.PasswordHasher) bool {
	if u.PasswordHash == "" {
		return false
	}

	return hasher.Check(plaintext, u.PasswordHash)
}
