package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"matching-srv/internal/matching"
	kafkaDelivery "matching-srv/internal/matching/delivery/kafka"
)

// PublishMatchResult publishes a match run summary keyed by campaign ID.
func (p *implProducer) PublishMatchResult(ctx context.Context, result matching.MatchResultEvent) error {
	msg := kafkaDelivery.MatchResultMessage{
		RunID:      result.RunID,
		CampaignID: result.CampaignID,
		Top:        make([]kafkaDelivery.RankedInfluencerMessage, len(result.Top)),
		ComputedAt: result.ComputedAt,
	}
	for i, r := range result.Top {
		msg.Top[i] = kafkaDelivery.RankedInfluencerMessage{
			InfluencerID: r.InfluencerID,
			TotalScore:   r.TotalScore,
		}
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}

	if err := p.producer.Publish([]byte(result.CampaignID), body); err != nil {
		return fmt.Errorf("failed to publish match result: %w", err)
	}

	p.l.Infof(ctx, "matching.delivery.kafka.producer.PublishMatchResult: published run %s for campaign %s (%d top)",
		result.RunID, result.CampaignID, len(result.Top))
	return nil
}
