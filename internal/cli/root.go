package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"matching-srv/config"
	configSQLite "matching-srv/config/sqlite"
	"matching-srv/internal/matching"
	matchingPostgre "matching-srv/internal/matching/repository/postgre"
	matchingSQLite "matching-srv/internal/matching/repository/sqlite"
	matchingUsecase "matching-srv/internal/matching/usecase"
	"matching-srv/internal/model"
	"matching-srv/pkg/log"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/spf13/cobra"
)

// Version info set from main
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// cliScope is the caller identity for storage-backed commands.
var cliScope = model.Scope{UserID: "matchctl", Username: "matchctl", Role: model.RoleAdmin}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	driver      string
	sqlitePath  string
	postgresDSN string
	output      string
	verbose     bool
}

// NewRootCmd builds the matchctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "matchctl",
		Short: "Score and rank influencers for ME-IN campaigns",
		Long: `matchctl runs the matching engine outside the API.

It can:
  - score campaign and influencer records from JSON files
  - seed a local SQLite store and rank from it (or from Postgres)
  - recompute and list persisted match runs
  - issue test access tokens and internal service keys`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.driver, "driver", config.StorageDriverSQLite,
		"storage driver (sqlite, postgres)")
	rootCmd.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite", "data/matching.db",
		"SQLite database path")
	rootCmd.PersistentFlags().StringVar(&opts.postgresDSN, "postgres-dsn", "",
		"PostgreSQL connection string (driver=postgres)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable,
		"output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log usecase activity")

	rootCmd.AddCommand(
		newVersionCmd(),
		newScoreCmd(opts),
		newImportCmd(opts),
		newRecommendCmd(opts),
		newRecommendCampaignsCmd(opts),
		newRecomputeCmd(opts),
		newRunsCmd(opts),
		newTokenCmd(opts),
		newServiceKeyCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "matchctl %s\n", version)
			fmt.Fprintf(w, "  commit: %s\n", commit)
			fmt.Fprintf(w, "  built:  %s\n", buildTime)
		},
	}
}

func (o *globalOptions) logger() log.Logger {
	if !o.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:    "debug",
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})
}

// store is an open repository plus the means to close it.
type store struct {
	db     *sql.DB
	uc     matching.UseCase
	seeder matchingSQLite.Repository
}

func (s *store) Close() error {
	return s.db.Close()
}

// openStore opens the configured database and builds a usecase over it.
// Only the SQLite driver can be seeded.
func (o *globalOptions) openStore(ctx context.Context) (*store, error) {
	l := o.logger()

	switch o.driver {
	case config.StorageDriverSQLite:
		db, err := configSQLite.Open(ctx, o.sqlitePath)
		if err != nil {
			return nil, err
		}
		repo := matchingSQLite.New(db, l)
		return &store{
			db:     db,
			uc:     matchingUsecase.New(l, matchingUsecase.Dependencies{Repo: repo}, matchingUsecase.Config{}),
			seeder: repo,
		}, nil

	case config.StorageDriverPostgres:
		if o.postgresDSN == "" {
			return nil, fmt.Errorf("--postgres-dsn is required with --driver=postgres")
		}
		db, err := sql.Open("postgres", o.postgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
		}
		repo := matchingPostgre.New(db, l)
		return &store{
			db: db,
			uc: matchingUsecase.New(l, matchingUsecase.Dependencies{Repo: repo}, matchingUsecase.Config{}),
		}, nil

	default:
		return nil, fmt.Errorf("unknown driver %q (use sqlite or postgres)", o.driver)
	}
}

func (o *globalOptions) write(w io.Writer, v any) error {
	return writeOutput(w, o.output, v)
}
