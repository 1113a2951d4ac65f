package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundtrip(t *testing.T) {
	m := NewTokenManager("test-secret", 60)

	token, err := m.Generate("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID())
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", 60)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	tokenStr, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = m.Parse(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	m := NewTokenManager("test-secret", 60)

	token, err := m.Generate("user-123")
	assert.NoError(t, err)

	tampered := token[:len(token)-4] + "XXXX"
	_, err = m.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	other := NewTokenManager("other-secret", 60)
	token, err := other.Generate("user-123")
	assert.NoError(t, err)

	m := NewTokenManager("test-secret", 60)
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// A token without an exp claim must be rejected outright, otherwise dropping
// the claim would mint a never-expiring credential.
func TestParseRejectsMissingExpiry(t *testing.T) {
	m := NewTokenManager("test-secret", 60)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  "user-123",
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})
	tokenStr, err := noExp.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = m.Parse(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingSubject(t *testing.T) {
	m := NewTokenManager("test-secret", 60)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenStr, err := noSub.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = m.Parse(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	m := NewTokenManager("test-secret", 60)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = m.Parse(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
