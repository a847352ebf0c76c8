// api/auth/permission.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/lotr/api/cache"
	logger "github.com/dev-mohitbeniwal/lotr/api/logging"
)

// PermissionStore is the backing permissions lookup, conceptually the
// join of role_permissions and permissions.
type PermissionStore interface {
	GetPermissionsForRole(ctx context.Context, roleID int) ([]string, error)
}

// PermissionChecker resolves role permissions through a read-through
// cache. Entries expire by TTL only; nothing invalidates them explicitly.
type PermissionChecker struct {
	cache cache.Cache
	store PermissionStore
	ttl   time.Duration
}

func NewPermissionChecker(c cache.Cache, store PermissionStore, ttl time.Duration) *PermissionChecker {
	return &PermissionChecker{
		cache: c,
		store: store,
		ttl:   ttl,
	}
}

func permissionsKey(roleID int) string {
	return fmt.Sprintf("permissions:%d", roleID)
}

// HasPermission reports whether roleID holds the named permission. The
// cache is consulted first; on a miss the backing store is queried and
// the full set is cached, empty sets included, so permission-less roles
// don't hammer the store. A cache outage degrades to a direct store
// query rather than failing the check.
func (pc *PermissionChecker) HasPermission(ctx context.Context, roleID int, permission string) (bool, error) {
	key := permissionsKey(roleID)

	cached, err := pc.cache.Get(ctx, key)
	if err == nil {
		var permissions []string
		if jsonErr := json.Unmarshal([]byte(cached), &permissions); jsonErr == nil {
			return containsPermission(permissions, permission), nil
		}
		logger.Warn("Dropping undecodable permission cache entry",
			zap.String("key", key),
			zap.Int("roleID", roleID))
		if delErr := pc.cache.Delete(ctx, key); delErr != nil {
			logger.Warn("Failed to drop permission cache entry", zap.Error(delErr), zap.String("key", key))
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn("Permission cache unavailable, falling back to store",
			zap.Error(err),
			zap.Int("roleID", roleID))
	}

	permissions, err := pc.store.GetPermissionsForRole(ctx, roleID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch permissions for role %d: %w", roleID, err)
	}
	if permissions == nil {
		// A role with zero grants caches an empty set, not a miss.
		permissions = []string{}
	}

	if data, marshalErr := json.Marshal(permissions); marshalErr == nil {
		if setErr := pc.cache.Set(ctx, key, string(data), pc.ttl); setErr != nil {
			logger.Warn("Failed to cache permissions",
				zap.Error(setErr),
				zap.Int("roleID", roleID))
		}
	}

	return containsPermission(permissions, permission), nil
}

func containsPermission(permissions []string, permission string) bool {
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
