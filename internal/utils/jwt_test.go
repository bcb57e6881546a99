package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	// 有効期限を過去に設定してトークンを発行
	m := NewTokenManager("test-secret", -time.Hour)

	token, err := m.Generate(1)
	require.NoError(t, err)

	_, err = m.Validate(token)
	require.Error(t, err)

	// 期限切れは *jwt.ValidationError として返る
	var validationErr *jwt.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotZero(t, validationErr.Errors&jwt.ValidationErrorExpired)
}

func TestTokenManager_TamperedToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate(1)
	require.NoError(t, err)

	// 署名部分を改ざん
	tampered := token + "x"
	_, err = m.Validate(tampered)
	require.Error(t, err)

	var validationErr *jwt.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Generate(1)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)

	var validationErr *jwt.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestTokenManager_MalformedToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.Validate("not-a-jwt")
	require.Error(t, err)

	var validationErr *jwt.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}
