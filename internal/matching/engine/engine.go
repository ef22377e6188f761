// Package engine scores and ranks influencers against campaign requirements.
// It is pure: every function depends only on its arguments.
package engine

import (
	"math"
	"slices"
)

// CalculateMatchScore scores a single campaign/influencer pair.
// The result is returned regardless of the ranking threshold.
func CalculateMatchScore(c CampaignRequirements, p InfluencerProfile) MatchingScore {
	b := Breakdown{
		Content:     clamp(contentScore(c, p)),
		Audience:    clamp(audienceScore(c, p)),
		Performance: clamp(performanceScore(p)),
		Location:    clamp(locationScore(c, p)),
		Budget:      clamp(budgetScore(c, p)),
		Language:    clamp(languageScore(c, p)),
	}

	return MatchingScore{
		CandidateID: p.ID,
		TotalScore:  total(b),
		Breakdown:   b,
		Reasons:     reasons(b),
	}
}

// FindBestMatches ranks candidates for a campaign. Candidates scoring at or
// below MinTotalScore are dropped; ties keep input order.
func FindBestMatches(c CampaignRequirements, candidates []InfluencerProfile, limit int) []MatchingScore {
	scores := make([]MatchingScore, 0, len(candidates))
	for _, p := range candidates {
		scores = append(scores, CalculateMatchScore(c, p))
	}
	return rank(scores, limit)
}

// FindBestCampaigns ranks campaigns for an influencer using the same factors.
// CandidateID on each result is the campaign ID.
func FindBestCampaigns(p InfluencerProfile, campaigns []CampaignRequirements, limit int) []MatchingScore {
	scores := make([]MatchingScore, 0, len(campaigns))
	for _, c := range campaigns {
		s := CalculateMatchScore(c, p)
		s.CandidateID = c.ID
		scores = append(scores, s)
	}
	return rank(scores, limit)
}

func rank(scores []MatchingScore, limit int) []MatchingScore {
	if limit <= 0 {
		limit = DefaultLimit
	}

	kept := scores[:0]
	for _, s := range scores {
		if s.TotalScore > MinTotalScore {
			kept = append(kept, s)
		}
	}

	slices.SortStableFunc(kept, func(a, b MatchingScore) int {
		return b.TotalScore - a.TotalScore
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

func total(b Breakdown) int {
	sum := b.Content*WeightContent +
		b.Audience*WeightAudience +
		b.Performance*WeightPerformance +
		b.Location*WeightLocation +
		b.Budget*WeightBudget +
		b.Language*WeightLanguage
	return int(math.Round(sum))
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
