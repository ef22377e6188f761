package engine

// optimalRangeFactor bounds the ideal follower range at [min, min*factor].
const optimalRangeFactor = 5

// audienceScore rates total followers against the campaign minimum.
func audienceScore(c CampaignRequirements, p InfluencerProfile) float64 {
	if c.MinFollowers <= 0 {
		return 100
	}

	total := float64(p.TotalFollowers())
	minF := float64(c.MinFollowers)
	optimalMax := minF * optimalRangeFactor

	switch {
	case total >= minF && total <= optimalMax:
		return 100
	case total > optimalMax:
		return max(60, 100-(total/optimalMax-1)*20)
	default:
		return max(0, total/minF*50)
	}
}
