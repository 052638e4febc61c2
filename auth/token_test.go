package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	secret := []byte("test-secret")
	raw, err := GenToken(secret, 42)
	require.NoError(t, err)

	id, err := VerifyToken(secret, raw)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := GenToken([]byte("one"), 1)
	require.NoError(t, err)

	_, err = VerifyToken([]byte("two"), raw)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		Subject:   strconv.Itoa(1),
	})
	raw, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = VerifyToken(secret, raw)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongMethod(t *testing.T) {
	_, err := VerifyToken([]byte("secret"), "not-a-token")
	assert.Error(t, err)
}
