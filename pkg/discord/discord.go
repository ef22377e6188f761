package discord

import (
	"context"
	"fmt"
	"time"
)

func (d *discordImpl) url() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) post(ctx context.Context, payload webhookPayload) error {
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}
	_, status, err := d.client.Post(ctx, d.url(), payload, nil)
	if err != nil {
		return fmt.Errorf("discord.post: %w", err)
	}
	if status >= 300 {
		return fmt.Errorf("discord.post: unexpected status %d", status)
	}
	return nil
}

// SendMessage posts plain text content.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, webhookPayload{Content: truncate(content)})
}

// SendEmbed posts a single embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return d.post(ctx, webhookPayload{Embeds: []Embed{{
		Title:       options.Title,
		Description: truncate(options.Description),
		Color:       colorFor(options.Type),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Fields:      options.Fields,
	}}})
}

// SendInfo posts an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeInfo, Title: title, Description: description})
}

// ReportBug posts an error embed. Failures are logged, not returned to callers
// that are already handling an error.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	err := d.SendEmbed(ctx, MessageOptions{Type: MessageTypeError, Title: "Bug report", Description: message})
	if err != nil {
		d.l.Warnf(ctx, "discord.ReportBug: %v", err)
	}
	return err
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}

func truncate(s string) string {
	if len(s) <= maxDescriptionLen {
		return s
	}
	return s[:maxDescriptionLen] + "..."
}
