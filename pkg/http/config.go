package http

import (
	"net/http"
	"time"
)

// Defaults sized for short webhook posts.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultRetries   = 2
	DefaultRetryWait = 500 * time.Millisecond
)

// ClientConfig tunes the client. Retries counts attempts after the first.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}
