package store

import (
	"testing"

	"shop_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, "Alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	// The stored password is a hash, not the plain text
	assert.NotEqual(t, "s3cret-pass", user.Password)
}

func TestRegisterUserValidation(t *testing.T) {
	db := newTestDB(t)

	for _, tc := range []struct{ name, email, password string }{
		{"", "a@b.c", "password"},
		{"Alice", "", "password"},
		{"Alice", "a@b.c", ""},
	} {
		_, err := RegisterUser(db, tc.name, tc.email, tc.password)
		assert.ErrorIs(t, err, ErrValidation)
	}
	// Nothing was persisted by the failed attempts
	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, "Alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	// Second registration with the same email is rejected
	_, err = RegisterUser(db, "Other Alice", "alice@example.com", "different")
	assert.ErrorIs(t, err, ErrDuplicate)

	// Exactly one user with that email exists
	var count int64
	require.NoError(t, db.Model(&domain.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthenticateUser(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, "Bob", "bob@example.com", "correct-horse")
	require.NoError(t, err)

	// Right password succeeds
	user, err := AuthenticateUser(db, "bob@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)

	// Wrong password fails with bad credentials
	_, err = AuthenticateUser(db, "bob@example.com", "battery-staple")
	assert.ErrorIs(t, err, ErrBadCredentials)

	// Unknown email fails with not found
	_, err = AuthenticateUser(db, "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindUserByEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, "Carol", "carol@example.com", "password1")
	require.NoError(t, err)

	user, err := FindUserByEmail(db, "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Carol", user.Name)

	_, err = FindUserByEmail(db, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
