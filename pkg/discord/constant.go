package discord

import (
	"errors"
	"time"
)

const (
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

	// Discord rejects descriptions above 4096 characters.
	maxDescriptionLen = 4000

	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default Discord client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "matching-srv",
	}
}
