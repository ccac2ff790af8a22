package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates a token that is missing, malformed, expired or
// carries a bad signature.
var ErrInvalidToken = errors.New("invalid or expired token")

// Kind selects which signing secret and lifetime a token is issued with.
type Kind int

const (
	// Access tokens authenticate regular API requests.
	Access Kind = iota
	// Refresh tokens may only be exchanged for new access tokens.
	Refresh
)

// Codec issues and validates JWT session tokens bound to a user identity.
// Secrets and lifetimes are fixed at construction.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewCodec builds a Codec from the configured secrets and lifetimes.
func NewCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// Issue signs a token of the given kind carrying the user id as subject.
func (c *Codec) Issue(userID uint, kind Kind) (string, error) {
	secret, ttl := c.accessSecret, c.accessTTL
	if kind == Refresh {
		secret, ttl = c.refreshSecret, c.refreshTTL
	}

	now := c.now()
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Decode validates a token of the given kind and returns the bound user id.
func (c *Codec) Decode(tokenString string, kind Kind) (uint, error) {
	if tokenString == "" {
		return 0, ErrInvalidToken
	}

	secret := c.accessSecret
	if kind == Refresh {
		secret = c.refreshSecret
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return 0, ErrInvalidToken
	}

	var userID uint
	if _, err := fmt.Sscanf(subject, "%d", &userID); err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
