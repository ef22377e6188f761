package kafka

// Campaign event types carried on the campaign events topic.
const (
	EventTypeCampaignPublished = "campaign.published"
	EventTypeCampaignUpdated   = "campaign.updated"
	EventTypeCampaignClosed    = "campaign.closed"
)
