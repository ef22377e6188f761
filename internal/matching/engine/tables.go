package engine

// relatedCategories maps a campaign category to keywords that count as a
// partial content match.
var relatedCategories = map[string][]string{
	"beauty":        {"fashion", "lifestyle", "skincare", "makeup"},
	"fashion":       {"beauty", "lifestyle", "style", "luxury"},
	"lifestyle":     {"fashion", "beauty", "travel", "food"},
	"food":          {"cooking", "lifestyle", "travel", "restaurant"},
	"travel":        {"lifestyle", "photography", "food", "adventure"},
	"tech":          {"gaming", "gadgets", "technology", "reviews"},
	"gaming":        {"tech", "esports", "entertainment", "streaming"},
	"fitness":       {"health", "sports", "wellness", "nutrition"},
	"health":        {"fitness", "wellness", "nutrition", "lifestyle"},
	"entertainment": {"music", "comedy", "gaming", "lifestyle"},
	"kpop":          {"music", "entertainment", "korean", "dance"},
	"education":     {"tech", "lifestyle", "language", "career"},
}

// nearbyRegions maps a target region to places that count as a near match.
var nearbyRegions = map[string][]string{
	"uae":          {"dubai", "abu dhabi", "sharjah", "ajman"},
	"saudi arabia": {"riyadh", "jeddah", "dammam", "mecca"},
	"ksa":          {"riyadh", "jeddah", "dammam", "mecca"},
	"qatar":        {"doha"},
	"kuwait":       {"kuwait city", "hawalli"},
	"bahrain":      {"manama"},
	"oman":         {"muscat", "salalah"},
	"egypt":        {"cairo", "alexandria", "giza"},
	"jordan":       {"amman"},
	"gcc":          {"uae", "saudi", "qatar", "kuwait", "bahrain", "oman"},
	"middle east":  {"uae", "saudi", "qatar", "kuwait", "bahrain", "oman", "egypt", "jordan"},
}

// costBracket is a follower tier with its base price in campaign currency units.
type costBracket struct {
	below int64 // exclusive upper bound; 0 means unbounded
	base  float64
}

// costBrackets are ordered ascending; the last entry is open-ended.
var costBrackets = []costBracket{
	{below: 10_000, base: 100},
	{below: 50_000, base: 250},
	{below: 100_000, base: 500},
	{below: 500_000, base: 1_500},
	{below: 1_000_000, base: 5_000},
	{below: 0, base: 10_000},
}
