// api/auth/auth_test.go
package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	ctx := context.Background()

	newAuth := func(t *testing.T, store *fakePermissionStore) *Auth {
		t.Helper()
		_, c := newTestCache(t)
		tm := NewTokenManager("test-secret", time.Hour)
		return NewAuth(tm, NewPermissionChecker(c, store, time.Hour))
	}

	t.Run("HasPermission_AdminCanDelete", func(t *testing.T) {
		store := &fakePermissionStore{permissions: map[int][]string{
			1: {"read", "create", "update", "delete"},
		}}
		a := newAuth(t, store)

		token, err := a.GenerateToken(7, 1)
		require.NoError(t, err)

		allowed, err := a.HasPermission(ctx, token, "delete")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("HasPermission_ViewerCannotDelete", func(t *testing.T) {
		store := &fakePermissionStore{permissions: map[int][]string{
			3: {"read"},
		}}
		a := newAuth(t, store)

		token, err := a.GenerateToken(8, 3)
		require.NoError(t, err)

		allowed, err := a.HasPermission(ctx, token, "delete")
		require.NoError(t, err)
		assert.False(t, allowed)

		allowed, err = a.HasPermission(ctx, token, "read")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("HasPermission_InvalidTokenShortCircuits", func(t *testing.T) {
		store := &fakePermissionStore{permissions: map[int][]string{
			1: {"read", "create", "update", "delete"},
		}}
		a := newAuth(t, store)

		allowed, err := a.HasPermission(ctx, "not-a-token", "read")
		require.NoError(t, err)
		assert.False(t, allowed)
		// Neither the cache nor the store saw any traffic.
		assert.Equal(t, 0, store.calls)
	})

	t.Run("HasPermission_ExpiredTokenShortCircuits", func(t *testing.T) {
		store := &fakePermissionStore{permissions: map[int][]string{
			1: {"read"},
		}}
		_, c := newTestCache(t)
		tm := NewTokenManager("test-secret", time.Hour)
		issued := time.Now()
		tm.now = func() time.Time { return issued }
		a := NewAuth(tm, NewPermissionChecker(c, store, time.Hour))

		token, err := a.GenerateToken(9, 1)
		require.NoError(t, err)

		tm.now = func() time.Time { return issued.Add(2 * time.Hour) }
		allowed, err := a.HasPermission(ctx, token, "read")
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, store.calls)
	})
}
