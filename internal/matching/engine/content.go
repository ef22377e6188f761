package engine

import "strings"

const (
	contentExact    = 100.0
	contentRelated  = 80.0
	contentPortCap  = 70.0
	contentFallback = 20.0
)

// contentScore rates how well the influencer's expertise fits the campaign
// category. The first matching rule wins.
func contentScore(c CampaignRequirements, p InfluencerProfile) float64 {
	category := normalize(c.Category)
	if category == "" {
		return contentFallback
	}

	for _, tag := range p.Expertise {
		if normalize(tag) == category {
			return contentExact
		}
	}

	if related, ok := relatedCategories[category]; ok {
		for _, tag := range p.Expertise {
			t := normalize(tag)
			for _, kw := range related {
				if t == kw {
					return contentRelated
				}
			}
		}
	}

	var sum float64
	var n int
	for _, item := range p.Portfolio {
		if normalize(item.Category) == category {
			sum += item.Performance
			n++
		}
	}
	if n > 0 {
		return min(contentPortCap, sum/float64(n))
	}

	return contentFallback
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
