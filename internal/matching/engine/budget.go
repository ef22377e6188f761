package engine

// EstimateCost returns the expected fee for an influencer: the follower
// bracket base price scaled by 0.5 + rating/5.
func EstimateCost(p InfluencerProfile) float64 {
	return bracketBase(p.TotalFollowers()) * (0.5 + p.Stats.AvgRating/5)
}

func bracketBase(followers int64) float64 {
	for _, b := range costBrackets {
		if b.below == 0 || followers < b.below {
			return b.base
		}
	}
	return costBrackets[len(costBrackets)-1].base
}

// budgetScore rates the estimated cost against the campaign budget range.
func budgetScore(c CampaignRequirements, p InfluencerProfile) float64 {
	cost := EstimateCost(p)

	switch {
	case cost >= c.Budget.Min && cost <= c.Budget.Max:
		return 100
	case cost < c.Budget.Min:
		return 60
	case c.Budget.Max <= 0:
		// Any positive cost is infinitely over a zero budget.
		return 20
	default:
		return max(20, 100-(cost/c.Budget.Max-1)*40)
	}
}
