package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"matching-srv/internal/matching"
	kafkaDelivery "matching-srv/internal/matching/delivery/kafka"
	"matching-srv/internal/model"

	"github.com/IBM/sarama"
)

// handleCampaignEvent recomputes matches for published or updated campaigns
// and drops cached rankings for closed ones. Returning nil marks the message.
func (c *consumer) handleCampaignEvent(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event kafkaDelivery.CampaignEventMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.l.Warnf(ctx, "matching.delivery.kafka.consumer.handleCampaignEvent: invalid message (skipping): %v", err)
		return nil
	}
	if event.CampaignID == "" {
		c.l.Warnf(ctx, "matching.delivery.kafka.consumer.handleCampaignEvent: missing campaign_id (skipping)")
		return nil
	}

	switch event.EventType {
	case kafkaDelivery.EventTypeCampaignPublished, kafkaDelivery.EventTypeCampaignUpdated:
		run, err := c.uc.RecomputeCampaign(ctx, matching.RecomputeCampaignInput{
			CampaignID: event.CampaignID,
			Trigger:    model.TriggerEvent,
		})
		if err != nil {
			if errors.Is(err, matching.ErrCampaignNotFound) || errors.Is(err, matching.ErrCampaignNotOpen) {
				c.l.Warnf(ctx, "matching.delivery.kafka.consumer.handleCampaignEvent: %s %s (skipping): %v", event.EventType, event.CampaignID, err)
				return nil
			}
			return fmt.Errorf("recompute campaign %s: %w", event.CampaignID, err)
		}
		c.l.Infof(ctx, "matching.delivery.kafka.consumer.handleCampaignEvent: %s %s: run %s ranked %d",
			event.EventType, event.CampaignID, run.ID, len(run.Results))

	case kafkaDelivery.EventTypeCampaignClosed:
		if err := c.uc.InvalidateCampaign(ctx, event.CampaignID); err != nil {
			return fmt.Errorf("invalidate campaign %s: %w", event.CampaignID, err)
		}

	default:
		c.l.Debugf(ctx, "matching.delivery.kafka.consumer.handleCampaignEvent: ignoring event type %q", event.EventType)
	}

	return nil
}
