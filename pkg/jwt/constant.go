package jwt

import (
	"errors"
	"time"
)

const (
	// MinSecretKeyLen is the minimum length for an HS256 secret key.
	MinSecretKeyLen = 32
	defaultTTL      = 24 * time.Hour
)

var (
	ErrSecretTooShort = errors.New("jwt: secret key must be at least 32 characters")
	ErrInvalidToken   = errors.New("jwt: invalid token")
)
