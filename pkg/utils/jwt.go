package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// InitJWT sets the signing key. Called from main once config is loaded, the
// secret may come from a .env file that is not read until then.
func InitJWT(secret string) {
	jwtSecret = []byte(secret)
}

// SessionClaims is the informational session token issued on mock login. It
// gates nothing, it only mirrors the persisted identity for the demo page.
type SessionClaims struct {
	UserID      string `json:"user_id"`
	HashedEmail string `json:"hashed_email"`
	jwt.RegisteredClaims
}

func GenerateJWT(userID, hashedEmail string) (string, error) {
	claims := SessionClaims{
		UserID:      userID,
		HashedEmail: hashedEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseJWT(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
