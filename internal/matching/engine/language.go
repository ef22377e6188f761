package engine

// languageScore rates coverage of the campaign target languages.
func languageScore(c CampaignRequirements, p InfluencerProfile) float64 {
	spoken := make(map[string]struct{}, len(p.Languages))
	for _, l := range p.Languages {
		spoken[normalize(l)] = struct{}{}
	}

	targets := make(map[string]struct{}, len(c.TargetLanguages))
	for _, l := range c.TargetLanguages {
		if n := normalize(l); n != "" {
			targets[n] = struct{}{}
		}
	}
	if len(targets) == 0 {
		return 100
	}

	matched := 0
	for l := range targets {
		if _, ok := spoken[l]; ok {
			matched++
		}
	}

	switch {
	case matched == len(targets):
		return 100
	case matched == 0:
		return 0
	default:
		return float64(matched) / float64(len(targets)) * 80
	}
}
