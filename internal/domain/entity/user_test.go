package entity

import (
	"testing"

	domainerrors "forkful/internal/domain/errors"
	mockService "forkful/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SetPassword_Success(t *testing.T) {
	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)

	user := &User{Username: "chef"}
	err := user.SetPassword("secret123", hasher)

	require.NoError(t, err)
	assert.Equal(t, "hashed-secret", user.PasswordHash)
}

func TestUser_SetPassword_TooShort(t *testing.T) {
	hasher := mockService.NewMockPasswordHasher(t)

	user := &User{Username: "chef"}
	err := user.SetPassword("12345", hasher)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
	assert.Empty(t, user.PasswordHash)
}

func TestUser_SetPassword_EmptyRejectedBeforeHashing(t *testing.T) {
	// The hasher gets no expectations: it must never be called.
	hasher := mockService.NewMockPasswordHasher(t)

	user := &User{Username: "chef"}
	err := user.SetPassword("", hasher)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestUser_Authenticate_Success(t *testing.T) {
	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Check("secret123", "hashed-secret").Return(true)

	user := &User{Username: "chef", PasswordHash: "hashed-secret"}

	assert.True(t, user.Authenticate("secret123", hasher))
}

func TestUser_Authenticate_WrongPassword(t *testing.T) {
	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Check("wrong", "hashed-secret").Return(false)

	user := &User{Username: "chef", PasswordHash: "hashed-secret"}

	assert.False(t, user.Authenticate("wrong", hasher))
}

func TestUser_Authenticate_NoStoredHash(t *testing.T) {
	hasher := mockService.NewMockPasswordHasher(t)

	user := &User{Username: "chef"}

	assert.False(t, user.Authenticate("anything", hasher))
}
