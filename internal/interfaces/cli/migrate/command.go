package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/j-kappa/ticketing-system/internal/infrastructure/config"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/database"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/persistence"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

var (
	env      string
	skipSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Create or update the database schema and seed default team members.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Skip seeding default team members")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	gdb, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close(gdb)

	if err := persistence.Migrate(gdb); err != nil {
		return err
	}
	if skipSeed {
		return nil
	}
	return persistence.Seed(gdb)
}
