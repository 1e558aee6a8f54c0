package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const shareIssuer = "econosfera"

// ErrInvalidShareToken is returned for tokens that are malformed, forged or expired
var ErrInvalidShareToken = errors.New("invalid share token")

// ShareClaims identifies a shared scenario
type ShareClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// GenerateShareToken signs a token granting read access to a scenario until now+ttl
func GenerateShareToken(id uuid.UUID, kind, secret string, ttl time.Duration, now time.Time) (string, error) {
	claims := ShareClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    shareIssuer,
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign share token: %w", err)
	}
	return signed, nil
}

// ParseShareToken validates a share token and returns the scenario id it grants
func ParseShareToken(tokenString, secret string, now time.Time) (uuid.UUID, error) {
	claims := &ShareClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(shareIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject: %v", ErrInvalidShareToken, err)
	}
	return id, nil
}
