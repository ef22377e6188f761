package redis

import (
	"context"
	"encoding/json"
	"time"

	"matching-srv/internal/matching/repository"
	pkgRedis "matching-srv/pkg/redis"
)

// =====================================================
// Campaign rankings
// =====================================================

func (r *implCacheRepository) GetCampaignMatches(ctx context.Context, opt repository.CampaignMatchesKey) (repository.CachedMatches, error) {
	return r.get(ctx, campaignKey(opt))
}

func (r *implCacheRepository) SetCampaignMatches(ctx context.Context, opt repository.CampaignMatchesKey, m repository.CachedMatches, ttl time.Duration) error {
	return r.set(ctx, campaignKey(opt), m, ttl)
}

// =====================================================
// Influencer rankings
// =====================================================

func (r *implCacheRepository) GetInfluencerMatches(ctx context.Context, opt repository.InfluencerMatchesKey) (repository.CachedMatches, error) {
	return r.get(ctx, influencerKey(opt))
}

func (r *implCacheRepository) SetInfluencerMatches(ctx context.Context, opt repository.InfluencerMatchesKey, m repository.CachedMatches, ttl time.Duration) error {
	return r.set(ctx, influencerKey(opt), m, ttl)
}

// =====================================================
// Invalidation
// =====================================================

func (r *implCacheRepository) InvalidateCampaign(ctx context.Context, campaignID string) error {
	n, err := r.redis.DeleteByPattern(ctx, campaignPattern(campaignID))
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.redis.InvalidateCampaign: %v", err)
		return err
	}
	r.l.Debugf(ctx, "matching.repository.redis.InvalidateCampaign: campaign=%s removed=%d", campaignID, n)
	return nil
}

// InvalidateInfluencerMatches drops every influencer ranking, since any
// campaign change can reorder them.
func (r *implCacheRepository) InvalidateInfluencerMatches(ctx context.Context) error {
	if _, err := r.redis.DeleteByPattern(ctx, influencerPattern()); err != nil {
		r.l.Errorf(ctx, "matching.repository.redis.InvalidateInfluencerMatches: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) get(ctx context.Context, key string) (repository.CachedMatches, error) {
	data, err := r.redis.Get(ctx, key)
	if pkgRedis.IsNil(err) {
		return repository.CachedMatches{}, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Warnf(ctx, "matching.repository.redis.get: key=%s: %v", key, err)
		return repository.CachedMatches{}, err
	}
	var m repository.CachedMatches
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		r.l.Errorf(ctx, "matching.repository.redis.get: failed to unmarshal %s: %v", key, err)
		return repository.CachedMatches{}, repository.ErrCacheMiss
	}
	return m, nil
}

func (r *implCacheRepository) set(ctx context.Context, key string, m repository.CachedMatches, ttl time.Duration) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, key, data, ttl); err != nil {
		r.l.Errorf(ctx, "matching.repository.redis.set: key=%s: %v", key, err)
		return err
	}
	return nil
}
