package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/engine"
	matchingUsecase "matching-srv/internal/matching/usecase"

	"github.com/spf13/cobra"
)

func newScoreCmd(opts *globalOptions) *cobra.Command {
	var (
		campaignFile   string
		candidatesFile string
		limit          int
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Rank influencers from JSON files",
		Long: `Rank the influencer profiles in a JSON file against a campaign
read from another JSON file. Nothing is read from or written to storage.

Examples:
  matchctl score --campaign campaign.json --candidates influencers.json
  matchctl score --campaign campaign.json --candidates influencers.json --limit 5 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var campaign engine.CampaignRequirements
			if err := readJSONFile(campaignFile, &campaign); err != nil {
				return err
			}
			var candidates []engine.InfluencerProfile
			if err := readJSONFile(candidatesFile, &candidates); err != nil {
				return err
			}

			uc := matchingUsecase.New(opts.logger(), matchingUsecase.Dependencies{}, matchingUsecase.Config{})
			scores, err := uc.ScoreAdHoc(cmd.Context(), matching.ScoreAdHocInput{
				Campaign:   campaign,
				Candidates: candidates,
				Limit:      limit,
			})
			if err != nil {
				return err
			}

			return opts.write(cmd.OutOrStdout(), scores)
		},
	}

	cmd.Flags().StringVar(&campaignFile, "campaign", "", "campaign requirements JSON file")
	cmd.Flags().StringVar(&candidatesFile, "candidates", "", "influencer profiles JSON file (array)")
	cmd.Flags().IntVar(&limit, "limit", engine.DefaultLimit, "maximum number of matches")
	_ = cmd.MarkFlagRequired("campaign")
	_ = cmd.MarkFlagRequired("candidates")

	return cmd
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
