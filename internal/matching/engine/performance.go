package engine

// performanceScore blends completion rate, rating and experience.
// The experience part saturates at ten campaigns.
func performanceScore(p InfluencerProfile) float64 {
	completion := p.Stats.CompletionRate * 40
	rating := p.Stats.AvgRating / 5 * 40
	experience := min(20, float64(p.Stats.TotalCampaigns)/10*20)
	return completion + rating + experience
}
