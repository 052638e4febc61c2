// Package auth issues and verifies the HS256 bearer tokens guarding
// every private route. Signing is synchronous: the caller gets a token
// or an error, nothing else.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const issuer = "https://gearmeet.test"

// TokenTTL bounds every issued credential.
const TokenTTL = 5 * 24 * time.Hour

func GenToken(secret []byte, userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    issuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
	})
	return token.SignedString(secret)
}

// VerifyToken checks the signature and expiry and returns the subject
// user id. It does not consult the store; the authenticator middleware
// still has to confirm the subject exists.
func VerifyToken(secret []byte, raw string) (uint, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !t.Valid {
		return 0, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject: %w", err)
	}
	return uint(id), nil
}
