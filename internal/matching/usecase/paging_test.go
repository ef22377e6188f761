package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqliteconn "matching-srv/config/sqlite"
	"matching-srv/internal/matching"
	"matching-srv/internal/matching/repository/sqlite"
	"matching-srv/internal/model"
	"matching-srv/pkg/log"
)

func mediocreInfluencer(id string, createdAt time.Time) model.Influencer {
	return model.Influencer{
		ID:             id,
		Expertise:      []string{"lifestyle"},
		Languages:      []string{"english"},
		Location:       "Riyadh",
		SocialAccounts: []model.SocialAccount{{Platform: "instagram", Followers: 12_000, AvgViews: 1_000, EngagementRate: 1.5}},
		Stats:          model.InfluencerStats{TotalCampaigns: 2, CompletedCampaigns: 1, AvgRating: 3, CompletionRate: 0.5},
		CreatedAt:      createdAt,
	}
}

func TestRankInfluencersPaging(t *testing.T) {
	ctx := context.Background()

	t.Run("best match on a later page is ranked", func(t *testing.T) {
		db, err := sqliteconn.Open(ctx, ":memory:")
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		repo := sqlite.New(db, log.NewNop())

		if err := repo.UpsertCampaign(ctx, testCampaign()); err != nil {
			t.Fatalf("UpsertCampaign: %v", err)
		}
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		best := strongInfluencer()
		best.CreatedAt = base.Add(time.Hour)
		pool := []model.Influencer{
			mediocreInfluencer("inf-m1", base),
			mediocreInfluencer("inf-m2", base.Add(time.Minute)),
			mediocreInfluencer("inf-m3", base.Add(2*time.Minute)),
			best,
		}
		for _, inf := range pool {
			if err := repo.UpsertInfluencer(ctx, inf); err != nil {
				t.Fatalf("UpsertInfluencer(%s): %v", inf.ID, err)
			}
		}

		uc := New(log.NewNop(), Dependencies{
			Repo:      repo,
			Cache:     newFakeCache(),
			Publisher: &fakePublisher{},
			Notifier:  &fakeNotifier{},
			Storage:   &fakeStorage{},
		}, Config{CandidatePageSize: 3})

		out, err := uc.RecommendInfluencers(ctx, brandScope, matching.RecommendInfluencersInput{CampaignID: "camp-1"})
		if err != nil {
			t.Fatalf("RecommendInfluencers: %v", err)
		}
		if out.CandidatesTotal != 4 {
			t.Errorf("CandidatesTotal mismatch: got %d, want %d", out.CandidatesTotal, 4)
		}
		if len(out.Matches) == 0 || out.Matches[0].CandidateID != "inf-1" {
			t.Fatalf("top match mismatch: got %+v, want inf-1 first", out.Matches)
		}
	})

	tests := []struct {
		name      string
		poolSize  int
		pageSize  int
		wantCalls int
	}{
		{"single short page", 2, 3, 1},
		{"exact multiple ends on an empty page", 6, 3, 3},
		{"partial last page", 7, 3, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.repo.influencers = nil
			for i := range tc.poolSize {
				f.repo.influencers = append(f.repo.influencers, mediocreInfluencer(fmt.Sprintf("inf-%02d", i), time.Time{}))
			}
			f.uc = New(log.NewNop(), Dependencies{
				Repo:      f.repo,
				Cache:     f.cache,
				Publisher: f.publisher,
				Notifier:  f.notifier,
				Storage:   f.storage,
			}, Config{CandidatePageSize: tc.pageSize})

			out, err := f.uc.RecommendInfluencers(ctx, brandScope, matching.RecommendInfluencersInput{CampaignID: "camp-1"})
			if err != nil {
				t.Fatalf("RecommendInfluencers: %v", err)
			}
			if out.CandidatesTotal != tc.poolSize {
				t.Errorf("CandidatesTotal mismatch: got %d, want %d", out.CandidatesTotal, tc.poolSize)
			}
			if f.repo.listCalls != tc.wantCalls {
				t.Errorf("ListInfluencers calls mismatch: got %d, want %d", f.repo.listCalls, tc.wantCalls)
			}
		})
	}
}
