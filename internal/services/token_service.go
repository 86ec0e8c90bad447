package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 24 * time.Hour

var ErrMissingSigningKey = errors.New("jwt secret key is not configured")

// TokenIssuer signs HS256 bearer tokens accepted by the Auth middleware
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue returns a signed token carrying the user_id and role claims
func (t *TokenIssuer) Issue(userID, role string) (string, error) {
	if len(t.secret) == 0 {
		return "", ErrMissingSigningKey
	}
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
	})
	return token.SignedString(t.secret)
}
