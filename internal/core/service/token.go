package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userbase/auth-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer issues and verifies HS256-signed session tokens carrying the
// subject id, username and role plus an absolute expiry. Tokens are not
// revocable before expiry; validity is self-contained in the signed payload.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func (t *TokenIssuer) Issue(userID int64, username, role string) (string, error) {
	claims := sessionClaims{
		ID:       userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify rejects malformed tokens, wrong signing algorithms, signature
// mismatches, and elapsed expiry. It never consults storage.
func (t *TokenIssuer) Verify(token string) (*ports.TokenClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tkn *jwt.Token) (interface{}, error) {
		if tkn.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID:   claims.ID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
