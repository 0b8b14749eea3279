// Package auth implements stateless token issuance/verification and
// password hashing. Tokens are self-contained: validity is computed from the
// signature and the embedded timestamps, never looked up server-side.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/deepthoughts/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated-user payload embedded in every token and
// attached to a request after successful verification. It is constructed per
// request and never persisted.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

// Claims couples the registered claims (iat, exp) with the identity payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// IssueToken signs an HS256 token carrying the identity plus issued-at and
// expiry timestamps.
func IssueToken(identity Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:   identity.UserID,
		Username: identity.Username,
		Email:    identity.Email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns
// the embedded identity. An expired token yields common.ErrTokenExpired;
// anything else invalid (bad signature, garbage input) yields
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, common.ErrTokenExpired
		}
		return Identity{}, common.ErrInvalidToken
	}

	if !token.Valid {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
