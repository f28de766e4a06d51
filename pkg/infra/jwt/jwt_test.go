package jwt

import (
	"testing"
	"time"

	"github.com/OpenFunnel/ActionGate/pkg/config"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newManagerWithKey(key string) Manager {
	return NewJwtManager(&config.ServerConfig{SecretKey: key})
}

func TestCreateAndValidateToken(t *testing.T) {
	m := newManagerWithKey("test-secret")

	token, err := m.CreateToken()
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, m.ValidateToken(token))
}

func TestValidateToken_Garbage(t *testing.T) {
	m := newManagerWithKey("test-secret")

	assert.ErrorIs(t, m.ValidateToken("not-a-token"), ErrInvalidToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	token, err := newManagerWithKey("key-a").CreateToken()
	assert.NoError(t, err)

	assert.ErrorIs(t, newManagerWithKey("key-b").ValidateToken(token), ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: gojwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	assert.ErrorIs(t, newManagerWithKey("test-secret").ValidateToken(token), ErrExpiredToken)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, &Claims{}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	assert.ErrorIs(t, newManagerWithKey("test-secret").ValidateToken(token), ErrInvalidToken)
}
