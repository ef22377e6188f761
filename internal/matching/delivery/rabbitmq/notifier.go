package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"matching-srv/internal/matching"
	pkgRabbitMQ "matching-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (n *implNotifier) NotifyTopMatches(ctx context.Context, notification matching.TopMatchesNotification) error {
	body, err := json.Marshal(TopMatchesMessage{
		RunID:         notification.RunID,
		CampaignID:    notification.CampaignID,
		BrandID:       notification.BrandID,
		InfluencerIDs: notification.InfluencerIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := n.ch.Publish(ctx, pkgRabbitMQ.PublishArgs{
		Exchange:   n.exchange,
		RoutingKey: n.routingKey,
		Msg: pkgRabbitMQ.Publishing{
			ContentType:  pkgRabbitMQ.ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    notification.RunID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	n.l.Debugf(ctx, "matching.delivery.rabbitmq.NotifyTopMatches: campaign %s brand %s (%d influencers)",
		notification.CampaignID, notification.BrandID, len(notification.InfluencerIDs))
	return nil
}
