package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RememberTokenAge is how long a "remember me" login survives after the
// browser session ends.
const RememberTokenAge = 30 * 24 * time.Hour

type rememberClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateRememberToken signs a long-lived token used to re-establish a
// session from the remember-me cookie.
func GenerateRememberToken(userID uint, secret string) (string, error) {
	claims := &rememberClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(RememberTokenAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateRememberToken returns the user id carried by a valid token.
func ValidateRememberToken(tokenString, secret string) (uint, error) {
	claims := &rememberClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return 0, err
	}

	if !token.Valid {
		return 0, errors.New("invalid token")
	}

	return claims.UserID, nil
}
