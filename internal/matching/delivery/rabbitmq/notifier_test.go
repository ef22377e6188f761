package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"matching-srv/internal/matching"
	"matching-srv/pkg/log"
	pkgRabbitMQ "matching-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeChannel struct {
	pkgRabbitMQ.IChannel

	declared   []pkgRabbitMQ.ExchangeArgs
	published  []pkgRabbitMQ.PublishArgs
	declareErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(exc pkgRabbitMQ.ExchangeArgs) error {
	f.declared = append(f.declared, exc)
	return f.declareErr
}

func (f *fakeChannel) Publish(_ context.Context, p pkgRabbitMQ.PublishArgs) error {
	f.published = append(f.published, p)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type fakeConn struct {
	pkgRabbitMQ.IRabbitMQ
	ch *fakeChannel
}

func (f fakeConn) Channel() (pkgRabbitMQ.IChannel, error) {
	return f.ch, nil
}

func TestNotifyTopMatches(t *testing.T) {
	cfg := Config{Exchange: "mein.notifications", RoutingKey: "matching.top_matches"}

	t.Run("publishes to exchange", func(t *testing.T) {
		ch := &fakeChannel{}
		n, err := New(log.NewNop(), fakeConn{ch: ch}, cfg)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if len(ch.declared) != 1 || ch.declared[0].Name != cfg.Exchange || !ch.declared[0].Durable {
			t.Errorf("exchange mismatch: got %+v", ch.declared)
		}

		err = n.NotifyTopMatches(context.Background(), matching.TopMatchesNotification{
			RunID:         "run-1",
			CampaignID:    "camp-1",
			BrandID:       "brand-1",
			InfluencerIDs: []string{"inf-1", "inf-2"},
		})
		if err != nil {
			t.Fatalf("NotifyTopMatches: %v", err)
		}

		if len(ch.published) != 1 {
			t.Fatalf("publish count mismatch: got %d, want 1", len(ch.published))
		}
		p := ch.published[0]
		if p.Exchange != cfg.Exchange || p.RoutingKey != cfg.RoutingKey {
			t.Errorf("route mismatch: got %s/%s", p.Exchange, p.RoutingKey)
		}
		if p.Msg.DeliveryMode != amqp.Persistent || p.Msg.ContentType != pkgRabbitMQ.ContentTypeJSON {
			t.Errorf("publishing mismatch: got %+v", p.Msg)
		}

		var msg TopMatchesMessage
		if err := json.Unmarshal(p.Msg.Body, &msg); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if msg.BrandID != "brand-1" || len(msg.InfluencerIDs) != 2 {
			t.Errorf("message mismatch: got %+v", msg)
		}
	})

	t.Run("declare failure closes channel", func(t *testing.T) {
		ch := &fakeChannel{declareErr: errors.New("access refused")}
		if _, err := New(log.NewNop(), fakeConn{ch: ch}, cfg); err == nil {
			t.Fatal("expected error, got nil")
		}
		if !ch.closed {
			t.Error("channel should be closed")
		}
	})
}
