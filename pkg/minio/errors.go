package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

var (
	ErrInvalidInput = errors.New("minio: invalid input")
	ErrNotFound     = errors.New("minio: object not found")
)

// NewInvalidInputError wraps ErrInvalidInput with a message.
func NewInvalidInputError(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func handleMinIOError(err error, op string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("minio.%s: %w", op, err)
}
