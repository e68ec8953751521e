package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/docuvault/dms/internal/core/domain"
)

// ErrInvalidToken is returned by Verify for any token that fails signature
// or expiry checks, or that carries no user id.
var ErrInvalidToken = errors.New("invalid auth token")

const defaultTokenTTL = time.Hour

// TokenManager issues and verifies the compact signed tokens used for
// authentication. Tokens embed the user id and admin flag and expire after
// the configured TTL; there is no server-side revocation.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new token for the given identity.
func (m *TokenManager) Issue(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"id":      identity.UserID,
		"isAdmin": identity.IsAdmin,
		"exp":     time.Now().Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the decoded identity.
func (m *TokenManager) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, ErrInvalidToken
	}

	userID, _ := claims["id"].(string)
	if userID == "" {
		return domain.Identity{}, ErrInvalidToken
	}
	isAdmin, _ := claims["isAdmin"].(bool)

	return domain.Identity{UserID: userID, IsAdmin: isAdmin}, nil
}
