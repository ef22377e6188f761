package usecase

import (
	"context"
	"io"
	"maps"
	"slices"
	"sync"
	"time"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/repository"
	"matching-srv/internal/model"
	"matching-srv/pkg/minio"
	"matching-srv/pkg/paginator"
)

type fakeRepo struct {
	mu          sync.Mutex
	campaigns   map[string]model.Campaign
	influencers []model.Influencer
	runs        []model.MatchRun
	listErr     error
	listCalls   int
}

func (r *fakeRepo) DetailCampaign(ctx context.Context, id string) (model.Campaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return model.Campaign{}, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeRepo) ListCampaigns(ctx context.Context, opt repository.ListCampaignsOptions) ([]model.Campaign, error) {
	out := make([]model.Campaign, 0)
	for _, id := range slices.Sorted(maps.Keys(r.campaigns)) {
		c := r.campaigns[id]
		if opt.Status != "" && c.Status != opt.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeRepo) DetailInfluencer(ctx context.Context, id string) (model.Influencer, error) {
	for _, inf := range r.influencers {
		if inf.ID == id {
			return inf, nil
		}
	}
	return model.Influencer{}, repository.ErrNotFound
}

func (r *fakeRepo) ListInfluencers(ctx context.Context, opt repository.ListInfluencersOptions) ([]model.Influencer, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	r.listCalls++
	r.mu.Unlock()

	// Slice order stands in for (created_at, id).
	start := 0
	if opt.After != nil {
		start = len(r.influencers)
		for i, inf := range r.influencers {
			if inf.ID == opt.After.ID {
				start = i + 1
				break
			}
		}
	}
	out := make([]model.Influencer, 0, len(r.influencers))
	for _, inf := range r.influencers[start:] {
		if opt.MinFollowers > 0 && inf.Profile().TotalFollowers() < opt.MinFollowers {
			continue
		}
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
		out = append(out, inf)
	}
	return out, nil
}

func (r *fakeRepo) CreateMatchRun(ctx context.Context, opt repository.CreateMatchRunOptions) (model.MatchRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run := model.MatchRun{
		ID:              opt.ID,
		CampaignID:      opt.CampaignID,
		Trigger:         opt.Trigger,
		CandidatesTotal: opt.CandidatesTotal,
		Results:         opt.Results,
		CreatedAt:       time.Now(),
	}
	r.runs = append(r.runs, run)
	return run, nil
}

func (r *fakeRepo) GetMatchRuns(ctx context.Context, opt repository.GetMatchRunsOptions) ([]model.MatchRun, paginator.Paginator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.MatchRun, 0)
	for _, run := range r.runs {
		if run.CampaignID == opt.CampaignID {
			out = append(out, run)
		}
	}
	return out, paginator.Paginator{Total: int64(len(out)), Count: int64(len(out))}, nil
}

type fakeCache struct {
	mu          sync.Mutex
	campaign    map[repository.CampaignMatchesKey]repository.CachedMatches
	influencer  map[repository.InfluencerMatchesKey]repository.CachedMatches
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		campaign:   map[repository.CampaignMatchesKey]repository.CachedMatches{},
		influencer: map[repository.InfluencerMatchesKey]repository.CachedMatches{},
	}
}

func (c *fakeCache) GetCampaignMatches(ctx context.Context, k repository.CampaignMatchesKey) (repository.CachedMatches, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.campaign[k]
	if !ok {
		return repository.CachedMatches{}, repository.ErrCacheMiss
	}
	return m, nil
}

func (c *fakeCache) SetCampaignMatches(ctx context.Context, k repository.CampaignMatchesKey, m repository.CachedMatches, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.campaign[k] = m
	return nil
}

func (c *fakeCache) GetInfluencerMatches(ctx context.Context, k repository.InfluencerMatchesKey) (repository.CachedMatches, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.influencer[k]
	if !ok {
		return repository.CachedMatches{}, repository.ErrCacheMiss
	}
	return m, nil
}

func (c *fakeCache) SetInfluencerMatches(ctx context.Context, k repository.InfluencerMatchesKey, m repository.CachedMatches, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.influencer[k] = m
	return nil
}

func (c *fakeCache) InvalidateCampaign(ctx context.Context, campaignID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.campaign {
		if k.CampaignID == campaignID {
			delete(c.campaign, k)
		}
	}
	c.invalidated = append(c.invalidated, campaignID)
	return nil
}

func (c *fakeCache) InvalidateInfluencerMatches(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.influencer)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []matching.MatchResultEvent
}

func (p *fakePublisher) PublishMatchResult(ctx context.Context, e matching.MatchResultEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []matching.TopMatchesNotification
}

func (n *fakeNotifier) NotifyTopMatches(ctx context.Context, tm matching.TopMatchesNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, tm)
	return nil
}

type fakeStorage struct {
	uploaded map[string][]byte
}

func (s *fakeStorage) EnsureBucket(ctx context.Context, bucketName string) error { return nil }

func (s *fakeStorage) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	b, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	if s.uploaded == nil {
		s.uploaded = map[string][]byte{}
	}
	s.uploaded[req.BucketName+"/"+req.ObjectName] = b
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: int64(len(b))}, nil
}

func (s *fakeStorage) GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	return &minio.PresignedURLResponse{
		URL:       "https://storage.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: time.Now().Add(req.Expiry),
	}, nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, bucketName, objectName string) error { return nil }

func (s *fakeStorage) HealthCheck(ctx context.Context) error { return nil }
