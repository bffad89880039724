package authn

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestParseClaims(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":              "sub-1",
		"email":            "a@b.com",
		"cognito:username": "a@b.com",
	}).SignedString([]byte("test-key"))
	assert.NoError(t, err)

	claims, err := ParseClaims(token)
	assert.NoError(t, err)
	assert.Equal(t, "sub-1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "a@b.com", claims.Username)
}

func TestParseClaims_NotAToken(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	assert.Error(t, err)
}
