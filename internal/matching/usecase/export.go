package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/engine"
	"matching-srv/internal/model"
	"matching-srv/pkg/minio"
)

type shortlistDocument struct {
	CampaignID      string                 `json:"campaign_id"`
	CampaignTitle   string                 `json:"campaign_title"`
	GeneratedAt     time.Time              `json:"generated_at"`
	GeneratedBy     string                 `json:"generated_by"`
	CandidatesTotal int                    `json:"candidates_total"`
	Matches         []engine.MatchingScore `json:"matches"`
}

// ExportShortlist uploads the current ranking as JSON and returns a
// presigned download link.
func (uc *implUseCase) ExportShortlist(ctx context.Context, sc model.Scope, input matching.ExportShortlistInput) (matching.ExportShortlistOutput, error) {
	if strings.TrimSpace(input.CampaignID) == "" {
		return matching.ExportShortlistOutput{}, matching.ErrInvalidInput
	}
	if uc.storage == nil {
		return matching.ExportShortlistOutput{}, fmt.Errorf("%w: object storage is not configured", matching.ErrExportFailed)
	}
	limit := normalizeLimit(input.Limit, matching.DefaultInfluencerLimit, matching.MaxInfluencerLimit)

	c, err := uc.getCampaign(ctx, input.CampaignID)
	if err != nil {
		return matching.ExportShortlistOutput{}, err
	}
	if !canAccessCampaign(sc, c) {
		return matching.ExportShortlistOutput{}, matching.ErrForbidden
	}

	matches, total, err := uc.rankInfluencers(ctx, c, matching.CandidateFilters{}, limit)
	if err != nil {
		return matching.ExportShortlistOutput{}, err
	}

	body, err := json.MarshalIndent(shortlistDocument{
		CampaignID:      c.ID,
		CampaignTitle:   c.Title,
		GeneratedAt:     time.Now().UTC(),
		GeneratedBy:     sc.UserID,
		CandidatesTotal: total,
		Matches:         matches,
	}, "", "  ")
	if err != nil {
		uc.l.Errorf(ctx, "matching.usecase.ExportShortlist: marshal: %v", err)
		return matching.ExportShortlistOutput{}, matching.ErrExportFailed
	}

	objectName := fmt.Sprintf("shortlists/%s/%s.json", c.ID, uuid.NewString())
	if _, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.cfg.ExportBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(body),
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"campaign-id": c.ID,
		},
	}); err != nil {
		uc.l.Errorf(ctx, "matching.usecase.ExportShortlist: upload: %v", err)
		return matching.ExportShortlistOutput{}, fmt.Errorf("%w: %v", matching.ErrExportFailed, err)
	}

	presigned, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.cfg.ExportBucket,
		ObjectName: objectName,
		Expiry:     uc.cfg.ExportURLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "matching.usecase.ExportShortlist: presign: %v", err)
		return matching.ExportShortlistOutput{}, fmt.Errorf("%w: %v", matching.ErrExportFailed, err)
	}

	return matching.ExportShortlistOutput{
		ObjectName: objectName,
		URL:        presigned.URL,
		ExpiresAt:  presigned.ExpiresAt,
		Count:      len(matches),
	}, nil
}
