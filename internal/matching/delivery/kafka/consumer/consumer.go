package consumer

import (
	"context"
)

// ConsumeCampaignEvents starts consuming campaign events in the background.
func (c *consumer) ConsumeCampaignEvents(ctx context.Context) error {
	handler := &campaignEventsHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := c.group.ConsumeWithContext(ctx, []string{c.topic}, handler); err != nil {
					c.l.Errorf(ctx, "matching.delivery.kafka.consumer.ConsumeCampaignEvents: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range c.group.Errors() {
			c.l.Errorf(ctx, "matching.delivery.kafka.consumer.ConsumeCampaignEvents: group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.topic)
	return nil
}
