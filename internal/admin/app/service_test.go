package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifier(t *testing.T) {
	svc := NewService(NewStaticVerifier("admin", "admin123"))

	t.Run("exact pair succeeds", func(t *testing.T) {
		assert.NoError(t, svc.Login("admin", "admin123"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		err := svc.Login("admin", "admin124")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("wrong username fails", func(t *testing.T) {
		err := svc.Login("root", "admin123")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("empty pair fails", func(t *testing.T) {
		err := svc.Login("", "")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService(NewBcryptVerifier("admin", string(hash)))

	t.Run("matching password succeeds", func(t *testing.T) {
		assert.NoError(t, svc.Login("admin", "s3cret"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		err := svc.Login("admin", "admin123")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("wrong username fails", func(t *testing.T) {
		err := svc.Login("admin2", "s3cret")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})
}
