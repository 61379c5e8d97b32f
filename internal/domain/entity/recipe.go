package entity

import (
	"strings"
	"time"

	domainerrors "forkful/internal/domain/errors"
)

// MinInstructionsLength is the minimum trimmed length of recipe instructions.
const MinInstructionsLength = 50

// Recipe represents a single recipe owned by a user.
// UserID is nullable so that orphan records remain representable.
type Recipe struct {
	ID                int       // Database-generated identifier.
	Title             string    // Required display title.
	Instructions      string    // Required preparation text, subject to the length invariant.
	MinutesToComplete int       // Required preparation time.
	UserID            *int      // Owning user, nil for orphan records.
	User              *User     // Owning user, populated when loaded with its association.
	CreatedAt         time.Time // Timestamp of when this recipe was created.
	UpdatedAt         time.Time // Timestamp of the last modification.
}

// ValidateInstructions enforces the instructions length invariant.
// It runs on every write, before anything touches the store.
func ValidateInstructions(text string) error {
	if len(strings.TrimSpace(text)) < MinInstructionsLength {
		return domainerrors.ErrInstructionsTooShort
	}

	return nil
}

// Validate checks the recipe's field invariants.
func (r *Recipe) Validate() error {
	return ValidateInstructions(r.Instructions)
}
