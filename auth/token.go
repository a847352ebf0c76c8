// api/auth/token.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Status classifies the outcome of token validation. Callers branch on it
// instead of unpacking parser errors.
type Status int

const (
	StatusValid Status = iota
	StatusExpired
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusExpired:
		return "expired"
	default:
		return "invalid"
	}
}

// Claims is the decoded token payload. The custom claim names match the
// tokens already in circulation.
type Claims struct {
	UserID int `json:"userId"`
	RoleID int `json:"roleId"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 identity tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// GenerateToken signs a token for the given user and role, valid for the
// configured TTL from now.
func (tm *TokenManager) GenerateToken(userID, roleID int) (string, error) {
	now := tm.now()
	claims := Claims{
		UserID: userID,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// ValidateToken decodes a token and checks its signature and expiry.
// Malformed, tampered and expired tokens come back as a Status, never as
// an error: callers above this layer only ever see the classification.
func (tm *TokenManager) ValidateToken(tokenString string) (*Claims, Status) {
	if tokenString == "" {
		return nil, StatusInvalid
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Expiry is checked against the same clock used for issuance.
		jwt.WithTimeFunc(tm.now),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, StatusExpired
		}
		return nil, StatusInvalid
	}
	if !token.Valid {
		return nil, StatusInvalid
	}

	return claims, StatusValid
}
