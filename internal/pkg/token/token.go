// Package token signs and validates the bearer tokens issued at login.
package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Validation failures. Callers at the transport boundary must collapse all of
// them into one generic "could not validate credentials" outcome.
var (
	ErrExpired          = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrMalformed        = errors.New("token malformed")
)

// Issue signs a token whose subject claim carries the account email. The
// expiry is absolute: now + ttl.
func Issue(subject string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
	}
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

// Validate verifies signature and expiry and returns the subject claim.
func Validate(tokenString string, secret []byte) (string, error) {
	tok, err := jwtlib.ParseWithClaims(tokenString, &jwtlib.RegisteredClaims{}, func(tok *jwtlib.Token) (interface{}, error) {
		if tok.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
			return nil, ErrInvalidSignature
		}
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return "", ErrInvalidSignature
		default:
			return "", ErrMalformed
		}
	}
	claims, ok := tok.Claims.(*jwtlib.RegisteredClaims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}
