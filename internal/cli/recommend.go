package cli

import (
	"fmt"

	"matching-srv/internal/matching"
	"matching-srv/internal/model"
	"matching-srv/pkg/paginator"

	"github.com/spf13/cobra"
)

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	var (
		limit        int
		influencerID string
		filters      matching.CandidateFilters
	)

	cmd := &cobra.Command{
		Use:   "recommend <campaign-id>",
		Short: "Rank stored influencers for a campaign",
		Long: `Rank the influencers in storage against a stored campaign.

Examples:
  matchctl recommend camp-1
  matchctl recommend camp-1 --platform instagram --min-followers 10000
  matchctl recommend camp-1 --influencer inf-7
  matchctl --driver postgres --postgres-dsn "$DSN" recommend camp-1 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if influencerID != "" {
				score, err := st.uc.ScoreCandidate(ctx, cliScope, matching.ScoreCandidateInput{
					CampaignID:   args[0],
					InfluencerID: influencerID,
				})
				if err != nil {
					return err
				}
				return opts.write(cmd.OutOrStdout(), score)
			}

			out, err := st.uc.RecommendInfluencers(ctx, cliScope, matching.RecommendInfluencersInput{
				CampaignID: args[0],
				Limit:      limit,
				Filters:    filters,
			})
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), out.Matches)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", matching.DefaultInfluencerLimit, "maximum number of matches")
	cmd.Flags().StringVar(&influencerID, "influencer", "", "score only this influencer, even below the threshold")
	cmd.Flags().StringVar(&filters.Platform, "platform", "", "only influencers active on this platform")
	cmd.Flags().Int64Var(&filters.MinFollowers, "min-followers", 0, "only influencers with at least this many followers")
	cmd.Flags().StringVar(&filters.Language, "language", "", "only influencers speaking this language")

	return cmd
}

func newRecommendCampaignsCmd(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "campaigns <influencer-id>",
		Short: "Rank open campaigns for an influencer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			out, err := st.uc.RecommendCampaigns(ctx, cliScope, matching.RecommendCampaignsInput{
				InfluencerID: args[0],
				Limit:        limit,
			})
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), out.Matches)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", matching.DefaultCampaignLimit, "maximum number of campaigns")
	return cmd
}

func newRecomputeCmd(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "recompute [campaign-id]",
		Short: "Recompute and persist a match run",
		Long: `Rank a campaign and store the result as a match run. With --all every
open campaign is recomputed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return fmt.Errorf("pass either a campaign id or --all")
			}

			ctx := cmd.Context()
			st, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			w := cmd.OutOrStdout()
			if all {
				s, err := st.uc.RecomputeOpenCampaigns(ctx)
				if err != nil {
					return err
				}
				return opts.write(w, map[string]string{
					"campaigns": fmt.Sprint(s.Campaigns),
					"succeeded": fmt.Sprint(s.Succeeded),
					"failed":    fmt.Sprint(s.Failed),
				})
			}

			run, err := st.uc.RecomputeCampaign(ctx, matching.RecomputeCampaignInput{
				CampaignID: args[0],
				Trigger:    model.TriggerManual,
			})
			if err != nil {
				return err
			}
			return opts.write(w, []model.MatchRun{run})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "recompute every open campaign")
	return cmd
}

func newRunsCmd(opts *globalOptions) *cobra.Command {
	var page paginator.PaginateQuery

	cmd := &cobra.Command{
		Use:   "runs <campaign-id>",
		Short: "List persisted match runs of a campaign, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, _, err := st.uc.ListMatchRuns(ctx, cliScope, matching.ListMatchRunsInput{
				CampaignID: args[0],
				Paginate:   page,
			})
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), runs)
		},
	}

	cmd.Flags().IntVar(&page.Page, "page", 1, "page number")
	cmd.Flags().Int64Var(&page.Limit, "limit", 15, "runs per page")
	return cmd
}
