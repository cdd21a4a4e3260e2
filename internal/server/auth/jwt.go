// Package auth implements JWT issuing/validation and password hashing for
// the server side.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
)

// Claims carries the standard registered claims plus the user's role. The
// user id travels in the Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateToken mints an HS256 access token for the given user.
func GenerateToken(userID int64, role string, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		Role: role,
	})

	return token.SignedString(secretKey)
}

// ParseToken validates tokenString and returns the embedded user id and role.
// Expired tokens are reported as common.ErrTokenExpired so the HTTP layer can
// distinguish them from malformed ones.
func ParseToken(tokenString string, secretKey []byte) (int64, string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, "", common.ErrTokenExpired
		}
		return 0, "", common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, "", common.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", common.ErrInvalidToken
	}

	return userID, claims.Role, nil
}
