package matching

import "errors"

var (
	ErrInvalidInput       = errors.New("matching: invalid input")
	ErrInvalidBudget      = errors.New("matching: budget minimum exceeds maximum")
	ErrCampaignNotFound   = errors.New("matching: campaign not found")
	ErrCampaignNotOpen    = errors.New("matching: campaign is not open")
	ErrInfluencerNotFound = errors.New("matching: influencer not found")
	ErrForbidden          = errors.New("matching: forbidden")
	ErrTooManyCandidates  = errors.New("matching: too many candidates")
	ErrExportFailed       = errors.New("matching: export failed")
)
