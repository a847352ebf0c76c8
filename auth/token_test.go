// api/auth/token_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	t.Run("GenerateToken_RoundTrip", func(t *testing.T) {
		token, err := tm.GenerateToken(42, 2)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, status := tm.ValidateToken(token)
		assert.Equal(t, StatusValid, status)
		require.NotNil(t, claims)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, 2, claims.RoleID)
	})

	t.Run("ValidateToken_Expired", func(t *testing.T) {
		issued := time.Now()
		tm := NewTokenManager("test-secret", time.Hour)
		tm.now = func() time.Time { return issued }

		token, err := tm.GenerateToken(1, 1)
		require.NoError(t, err)

		// Just before expiry the token is still good.
		tm.now = func() time.Time { return issued.Add(time.Hour - time.Second) }
		_, status := tm.ValidateToken(token)
		assert.Equal(t, StatusValid, status)

		// Past expiry it is classified, not errored.
		tm.now = func() time.Time { return issued.Add(time.Hour + time.Second) }
		claims, status := tm.ValidateToken(token)
		assert.Equal(t, StatusExpired, status)
		assert.Nil(t, claims)
	})

	t.Run("ValidateToken_WrongSecret", func(t *testing.T) {
		other := NewTokenManager("another-secret", time.Hour)
		token, err := other.GenerateToken(1, 1)
		require.NoError(t, err)

		claims, status := tm.ValidateToken(token)
		assert.Equal(t, StatusInvalid, status)
		assert.Nil(t, claims)
	})

	t.Run("ValidateToken_Tampered", func(t *testing.T) {
		token, err := tm.GenerateToken(1, 1)
		require.NoError(t, err)

		// Flip a character in the signature segment.
		tampered := token[:len(token)-2] + "xx"
		claims, status := tm.ValidateToken(tampered)
		assert.Equal(t, StatusInvalid, status)
		assert.Nil(t, claims)
	})

	t.Run("ValidateToken_Malformed", func(t *testing.T) {
		for _, bad := range []string{"", "not-a-token", "a.b.c"} {
			claims, status := tm.ValidateToken(bad)
			assert.Equal(t, StatusInvalid, status)
			assert.Nil(t, claims)
		}
	})
}
