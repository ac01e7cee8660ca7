// Package auth implements token issuance and verification for bearer
// authentication.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued token stays valid. There is no refresh
// mechanism; clients re-authenticate after expiry.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned for any verification failure: bad
// signature, malformed token, or elapsed expiry. Callers must not
// distinguish between the sub-cases in responses.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the typed identity payload embedded in every token and
// passed explicitly through the call chain after verification.
type Claims struct {
	UserID uint   `json:"-"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens with a server-held secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a TokenService. The secret must be non-empty;
// config validation enforces that before the process starts.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue produces a signed token carrying the user's identity, expiring
// TokenTTL after issuance.
func (s *TokenService) Issue(userID uint, email, name string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("signing secret not configured")
	}

	now := s.now()
	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    "showcase-api",
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string. Any failure collapses to
// ErrInvalidToken so the caller cannot leak which check failed.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims.UserID = uint(id)

	return claims, nil
}
