package http

import (
	"errors"

	"matching-srv/internal/matching"
	pkgErrors "matching-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery         = pkgErrors.NewHTTPError(400, "Wrong query")
	errInvalidInput       = pkgErrors.NewHTTPError(400, "Invalid input")
	errInvalidBudget      = pkgErrors.NewHTTPError(400, "Budget minimum exceeds maximum")
	errTooManyCandidates  = pkgErrors.NewHTTPError(400, "Too many candidates")
	errForbidden          = pkgErrors.NewHTTPError(403, "Forbidden")
	errCampaignNotFound   = pkgErrors.NewHTTPError(404, "Campaign not found")
	errInfluencerNotFound = pkgErrors.NewHTTPError(404, "Influencer not found")
	errCampaignNotOpen    = pkgErrors.NewHTTPError(409, "Campaign is not open")
	errExportFailed       = pkgErrors.NewHTTPError(500, "Shortlist export failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, matching.ErrInvalidInput):
		return errInvalidInput
	case errors.Is(err, matching.ErrInvalidBudget):
		return errInvalidBudget
	case errors.Is(err, matching.ErrTooManyCandidates):
		return errTooManyCandidates
	case errors.Is(err, matching.ErrForbidden):
		return errForbidden
	case errors.Is(err, matching.ErrCampaignNotFound):
		return errCampaignNotFound
	case errors.Is(err, matching.ErrInfluencerNotFound):
		return errInfluencerNotFound
	case errors.Is(err, matching.ErrCampaignNotOpen):
		return errCampaignNotOpen
	case errors.Is(err, matching.ErrExportFailed):
		return errExportFailed
	default:
		panic(err)
	}
}
