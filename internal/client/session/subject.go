package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Subject reads the "sub" claim from a bearer token without verifying its
// signature. The client never holds the signing key, so the value is only
// good for display.
func Subject(token string) (string, error) {
	if token == "" {
		return "", errors.New("empty token")
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", err
	}
	return claims.GetSubject()
}
