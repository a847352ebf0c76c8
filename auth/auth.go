// api/auth/auth.go
package auth

import "context"

// Auth is the single entry point request-handling code authenticates and
// authorizes through. Token format details never leak past it.
type Auth struct {
	tokenManager      *TokenManager
	permissionChecker *PermissionChecker
}

func NewAuth(tokenManager *TokenManager, permissionChecker *PermissionChecker) *Auth {
	return &Auth{
		tokenManager:      tokenManager,
		permissionChecker: permissionChecker,
	}
}

func (a *Auth) GenerateToken(userID, roleID int) (string, error) {
	return a.tokenManager.GenerateToken(userID, roleID)
}

func (a *Auth) ValidateToken(token string) (*Claims, Status) {
	return a.tokenManager.ValidateToken(token)
}

// HasPermission reports whether the token's role may perform the named
// action. An invalid or expired token short-circuits to false without
// touching the cache or the permissions store. The error is non-nil only
// when the backing store itself failed.
func (a *Auth) HasPermission(ctx context.Context, token, permission string) (bool, error) {
	claims, status := a.ValidateToken(token)
	if status != StatusValid {
		return false, nil
	}
	return a.permissionChecker.HasPermission(ctx, claims.RoleID, permission)
}
