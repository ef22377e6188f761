package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
)

type fakeSession struct {
	sarama.ConsumerGroupSession

	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context {
	return s.ctx
}

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim

	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage {
	return c.messages
}

func newClaim(msgs ...*sarama.ConsumerMessage) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

func offsetMessage(offset int64, v string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{Topic: "mein.campaign.events", Offset: offset, Value: []byte(v)}
}

func TestConsumeClaim(t *testing.T) {
	published := `{"event_type":"campaign.published","campaign_id":"camp-1"}`
	closed := `{"event_type":"campaign.closed","campaign_id":"camp-2"}`

	t.Run("failing event stops the claim unmarked", func(t *testing.T) {
		dbErr := errors.New("db down")
		uc := &fakeUseCase{recomputeErr: dbErr}
		c := newTestConsumer(t, uc)
		c.retryBackoff = 0

		session := &fakeSession{ctx: context.Background()}
		h := &campaignEventsHandler{consumer: c}

		err := h.ConsumeClaim(session, newClaim(offsetMessage(10, published), offsetMessage(11, closed)))
		if !errors.Is(err, dbErr) {
			t.Fatalf("error mismatch: got %v, want %v", err, dbErr)
		}
		if len(session.marked) != 0 {
			t.Errorf("marked offsets mismatch: got %v, want none", session.marked)
		}
		if len(uc.recomputed) != defaultRetryAttempts {
			t.Errorf("attempts mismatch: got %d, want %d", len(uc.recomputed), defaultRetryAttempts)
		}
		if len(uc.invalidated) != 0 {
			t.Errorf("later message should not be handled: got %v", uc.invalidated)
		}
	})

	t.Run("transient failure retried in place", func(t *testing.T) {
		uc := &fakeUseCase{recomputeErr: errors.New("connection reset"), failures: 1}
		c := newTestConsumer(t, uc)
		c.retryBackoff = 0

		session := &fakeSession{ctx: context.Background()}
		h := &campaignEventsHandler{consumer: c}

		if err := h.ConsumeClaim(session, newClaim(offsetMessage(10, published), offsetMessage(11, closed))); err != nil {
			t.Fatalf("ConsumeClaim: %v", err)
		}
		if len(session.marked) != 2 || session.marked[0] != 10 || session.marked[1] != 11 {
			t.Errorf("marked offsets mismatch: got %v, want [10 11]", session.marked)
		}
		if len(uc.recomputed) != 2 {
			t.Errorf("attempts mismatch: got %d, want 2", len(uc.recomputed))
		}
	})

	t.Run("skipped events are marked", func(t *testing.T) {
		c := newTestConsumer(t, &fakeUseCase{})
		session := &fakeSession{ctx: context.Background()}
		h := &campaignEventsHandler{consumer: c}

		if err := h.ConsumeClaim(session, newClaim(offsetMessage(5, `{"event_type":`), offsetMessage(6, closed))); err != nil {
			t.Fatalf("ConsumeClaim: %v", err)
		}
		if len(session.marked) != 2 {
			t.Errorf("marked offsets mismatch: got %v, want [5 6]", session.marked)
		}
	})

	t.Run("cancelled session stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		uc := &fakeUseCase{recomputeErr: errors.New("db down")}
		c := newTestConsumer(t, uc)

		session := &fakeSession{ctx: ctx}
		h := &campaignEventsHandler{consumer: c}

		err := h.ConsumeClaim(session, newClaim(offsetMessage(10, published)))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error mismatch: got %v, want %v", err, context.Canceled)
		}
		if len(session.marked) != 0 {
			t.Errorf("marked offsets mismatch: got %v, want none", session.marked)
		}
	})
}
