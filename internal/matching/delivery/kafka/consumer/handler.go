package consumer

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

type campaignEventsHandler struct {
	consumer *consumer
}

func (h *campaignEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *campaignEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a message only once it is handled. A message that keeps
// failing ends the claim unmarked; the group resumes from the committed offset
// after the next rebalance, so later messages never commit past it.
func (h *campaignEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for msg := range claim.Messages() {
		if err := h.handleWithRetry(session, msg); err != nil {
			h.consumer.l.Errorf(ctx, "matching.delivery.kafka.consumer.ConsumeClaim: partition %d offset %d: %v", msg.Partition, msg.Offset, err)
			return fmt.Errorf("partition %d offset %d: %w", msg.Partition, msg.Offset, err)
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

func (h *campaignEventsHandler) handleWithRetry(session sarama.ConsumerGroupSession, msg *sarama.ConsumerMessage) error {
	ctx := session.Context()
	backoff := h.consumer.retryBackoff

	var err error
	for attempt := 1; attempt <= h.consumer.retryAttempts; attempt++ {
		if err = h.consumer.handleCampaignEvent(ctx, msg); err == nil {
			return nil
		}
		if attempt == h.consumer.retryAttempts {
			break
		}
		h.consumer.l.Warnf(ctx, "matching.delivery.kafka.consumer.handleWithRetry: offset %d attempt %d: %v", msg.Offset, attempt, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return err
}
