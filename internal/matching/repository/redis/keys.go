package redis

import (
	"fmt"
	"strings"

	"matching-srv/internal/matching/repository"
)

const keyPrefix = "matching"

// campaignKey varies by every filter that changes the candidate pool.
func campaignKey(k repository.CampaignMatchesKey) string {
	return fmt.Sprintf("%s:campaign:%s:%d:%s:%d:%s",
		keyPrefix, k.CampaignID, k.Limit,
		strings.ToLower(k.Platform), k.MinFollows, strings.ToLower(k.Language))
}

func campaignPattern(campaignID string) string {
	return fmt.Sprintf("%s:campaign:%s:*", keyPrefix, campaignID)
}

func influencerKey(k repository.InfluencerMatchesKey) string {
	return fmt.Sprintf("%s:influencer:%s:%d", keyPrefix, k.InfluencerID, k.Limit)
}

func influencerPattern() string {
	return keyPrefix + ":influencer:*"
}
