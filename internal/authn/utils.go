package authn

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidJWT = errors.New("invalid jwt token")
var ErrInvalidClaims = errors.New("invalid claims")

// Claims are the Cognito token claims this service cares about. Subject
// (from the standard claims) is the stable user id the profile records
// are keyed by.
type Claims struct {
	jwt.StandardClaims
	Email    string `json:"email"`
	Username string `json:"cognito:username"`
}

func ParseClaims(token string) (Claims, error) {
	claims := Claims{}
	// Check if token is JWT by attempting to parse it
	if t, err := jwt.ParseWithClaims(token, &claims, nil); err != nil {
		// Ignore validation errors; signature verification is done
		// upstream by the API gateway
		if _, ok := err.(*jwt.ValidationError); !ok {
			return claims, ErrInvalidJWT
		}

		// Check if token was decoded successfully
		if t == nil {
			return claims, ErrInvalidClaims
		}
	}
	return claims, nil
}
