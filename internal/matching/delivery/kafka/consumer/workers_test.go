package consumer

import (
	"context"
	"errors"
	"testing"

	"matching-srv/internal/matching"
	"matching-srv/internal/model"
	pkgKafka "matching-srv/pkg/kafka"
	"matching-srv/pkg/log"

	"github.com/IBM/sarama"
)

type fakeUseCase struct {
	matching.UseCase

	recomputeErr error
	// failures limits recomputeErr to the first n calls; 0 fails every call.
	failures     int
	recomputed   []matching.RecomputeCampaignInput
	invalidated  []string
}

func (f *fakeUseCase) RecomputeCampaign(_ context.Context, in matching.RecomputeCampaignInput) (model.MatchRun, error) {
	f.recomputed = append(f.recomputed, in)
	if f.recomputeErr != nil && (f.failures == 0 || len(f.recomputed) <= f.failures) {
		return model.MatchRun{}, f.recomputeErr
	}
	return model.MatchRun{ID: "run-1", CampaignID: in.CampaignID}, nil
}

func (f *fakeUseCase) InvalidateCampaign(_ context.Context, campaignID string) error {
	f.invalidated = append(f.invalidated, campaignID)
	return nil
}

type fakeGroup struct {
	pkgKafka.IConsumer
}

func newTestConsumer(t *testing.T, uc matching.UseCase) *consumer {
	t.Helper()
	c, err := New(Config{Logger: log.NewNop(), Group: fakeGroup{}, Topic: "mein.campaign.events", UseCase: uc})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c.(*consumer)
}

func message(v string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{Value: []byte(v)}
}

func TestHandleCampaignEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("published recomputes", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(t, uc)

		if err := c.handleCampaignEvent(ctx, message(`{"event_type":"campaign.published","campaign_id":"camp-1"}`)); err != nil {
			t.Fatalf("handleCampaignEvent: %v", err)
		}
		if len(uc.recomputed) != 1 {
			t.Fatalf("recompute calls mismatch: got %d, want 1", len(uc.recomputed))
		}
		if got := uc.recomputed[0]; got.CampaignID != "camp-1" || got.Trigger != model.TriggerEvent {
			t.Errorf("input mismatch: got %+v", got)
		}
	})

	t.Run("updated recomputes", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(t, uc)

		if err := c.handleCampaignEvent(ctx, message(`{"event_type":"campaign.updated","campaign_id":"camp-2"}`)); err != nil {
			t.Fatalf("handleCampaignEvent: %v", err)
		}
		if len(uc.recomputed) != 1 || uc.recomputed[0].CampaignID != "camp-2" {
			t.Errorf("recompute mismatch: got %+v", uc.recomputed)
		}
	})

	t.Run("closed invalidates", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(t, uc)

		if err := c.handleCampaignEvent(ctx, message(`{"event_type":"campaign.closed","campaign_id":"camp-3"}`)); err != nil {
			t.Fatalf("handleCampaignEvent: %v", err)
		}
		if len(uc.recomputed) != 0 {
			t.Errorf("closed campaign should not recompute: got %+v", uc.recomputed)
		}
		if len(uc.invalidated) != 1 || uc.invalidated[0] != "camp-3" {
			t.Errorf("invalidate mismatch: got %v", uc.invalidated)
		}
	})

	skipped := []struct {
		name string
		body string
		err  error
	}{
		{"malformed json", `{"event_type":`, nil},
		{"missing campaign", `{"event_type":"campaign.published"}`, nil},
		{"unknown type", `{"event_type":"campaign.archived","campaign_id":"c"}`, nil},
		{"campaign not found", `{"event_type":"campaign.published","campaign_id":"c"}`, matching.ErrCampaignNotFound},
		{"campaign not open", `{"event_type":"campaign.updated","campaign_id":"c"}`, matching.ErrCampaignNotOpen},
	}
	for _, tc := range skipped {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestConsumer(t, &fakeUseCase{recomputeErr: tc.err})
			if err := c.handleCampaignEvent(ctx, message(tc.body)); err != nil {
				t.Errorf("expected message to be skipped, got %v", err)
			}
		})
	}

	t.Run("transient failure is returned", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		c := newTestConsumer(t, &fakeUseCase{recomputeErr: dbErr})

		err := c.handleCampaignEvent(ctx, message(`{"event_type":"campaign.published","campaign_id":"c"}`))
		if !errors.Is(err, dbErr) {
			t.Errorf("error mismatch: got %v, want %v", err, dbErr)
		}
	})
}

func TestNew(t *testing.T) {
	uc := &fakeUseCase{}
	cases := []struct {
		name string
		cfg  Config
	}{
		{"no logger", Config{Group: fakeGroup{}, Topic: "t", UseCase: uc}},
		{"no usecase", Config{Logger: log.NewNop(), Group: fakeGroup{}, Topic: "t"}},
		{"no group", Config{Logger: log.NewNop(), Topic: "t", UseCase: uc}},
		{"no topic", Config{Logger: log.NewNop(), Group: fakeGroup{}, UseCase: uc}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
