package engine

// Canned reason sentences, one per factor that can qualify.
const (
	ReasonContent     = "Strong content alignment with the campaign category"
	ReasonAudience    = "Follower count fits the campaign's ideal audience range"
	ReasonPerformance = "Proven track record of completed, well-rated campaigns"
	ReasonLocation    = "Based in the campaign's target region"
	ReasonLanguage    = "Speaks the campaign's target languages"
	ReasonFallback    = "Potential match based on overall profile"
)

// reasons lists the qualifying factor sentences in factor order.
// Budget fit never produces a reason.
func reasons(b Breakdown) []string {
	out := make([]string, 0, 5)
	if b.Content >= ReasonThreshold {
		out = append(out, ReasonContent)
	}
	if b.Audience >= ReasonThreshold {
		out = append(out, ReasonAudience)
	}
	if b.Performance >= ReasonThreshold {
		out = append(out, ReasonPerformance)
	}
	if b.Location >= ReasonThreshold {
		out = append(out, ReasonLocation)
	}
	if b.Language >= ReasonThreshold {
		out = append(out, ReasonLanguage)
	}
	if len(out) == 0 {
		out = append(out, ReasonFallback)
	}
	return out
}
