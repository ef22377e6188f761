package cli

import (
	"fmt"

	"matching-srv/config"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <seed.json>",
		Short: "Seed the SQLite store with campaigns and influencers",
		Long: `Insert or replace the campaigns and influencers of a seed file in the
SQLite store. Existing records with the same ID are overwritten.

Seed file format:
  {"campaigns": [{"id": "...", "category": "beauty", ...}],
   "influencers": [{"id": "...", "expertise": ["beauty"], ...}]}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.driver != config.StorageDriverSQLite {
				return fmt.Errorf("import only supports --driver=sqlite")
			}

			var seed seedFile
			if err := readJSONFile(args[0], &seed); err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			for _, c := range seed.Campaigns {
				if c.ID == "" {
					return fmt.Errorf("campaign without id in %s", args[0])
				}
				if err := st.seeder.UpsertCampaign(ctx, c.toModel()); err != nil {
					return fmt.Errorf("campaign %s: %w", c.ID, err)
				}
			}
			for _, i := range seed.Influencers {
				if i.ID == "" {
					return fmt.Errorf("influencer without id in %s", args[0])
				}
				if err := st.seeder.UpsertInfluencer(ctx, i.toModel()); err != nil {
					return fmt.Errorf("influencer %s: %w", i.ID, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d campaigns and %d influencers into %s\n",
				len(seed.Campaigns), len(seed.Influencers), opts.sqlitePath)
			return nil
		},
	}
	return cmd
}
