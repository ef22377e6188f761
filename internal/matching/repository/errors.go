package repository

import "errors"

var (
	ErrNotFound       = errors.New("repository: not found")
	ErrCacheMiss      = errors.New("repository: cache miss")
	ErrInvalidInput   = errors.New("repository: invalid input")
	ErrFailedToInsert = errors.New("repository: failed to insert")
	ErrFailedToGet    = errors.New("repository: failed to get")
	ErrFailedToList   = errors.New("repository: failed to list")
)

const (
	// MaxListLimit caps list queries that are not paginated.
	MaxListLimit = 10000
)
