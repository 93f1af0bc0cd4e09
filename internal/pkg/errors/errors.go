package errors

import "errors"

var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrWeakPassword       = errors.New("weak password")
	ErrEmailDelivery      = errors.New("email delivery failed")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyVerified    = errors.New("already verified")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("not verified")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalid            = errors.New("invalid")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
