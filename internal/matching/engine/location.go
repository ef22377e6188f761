package engine

import "strings"

// locationScore rates the influencer location against the target regions.
func locationScore(c CampaignRequirements, p InfluencerProfile) float64 {
	regions := make([]string, 0, len(c.TargetRegions))
	for _, r := range c.TargetRegions {
		if n := normalize(r); n != "" {
			regions = append(regions, n)
		}
	}
	if len(regions) == 0 {
		return 100
	}

	loc := normalize(p.Location)
	if loc == "" {
		return 30
	}

	for _, r := range regions {
		if overlaps(loc, r) {
			return 100
		}
	}

	for _, r := range regions {
		for _, near := range nearbyRegions[r] {
			if overlaps(loc, near) {
				return 70
			}
		}
	}

	return 30
}

// overlaps reports whether either string contains the other.
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
