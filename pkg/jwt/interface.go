package jwt

import "matching-srv/pkg/scope"

// IManager signs and verifies HS256 access tokens.
// Implementations are safe for concurrent use.
type IManager interface {
	scope.Manager
}

// New creates a JWT manager.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, ErrSecretTooShort
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       ttl,
	}, nil
}
