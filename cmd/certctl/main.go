package main

import (
	"fmt"
	"os"

	"github.com/SeakMengs/MaintCert/internal/config"
	"github.com/SeakMengs/MaintCert/internal/database"
	"github.com/SeakMengs/MaintCert/internal/env"
	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const programName = "certctl"

var globalFlags = struct {
	envFile string
}{}

// runtime holds what every database backed command needs
type runtime struct {
	cfg    config.Config
	logger *zap.SugaredLogger
	db     *gorm.DB
	repo   *repository.Repository
}

func (rt *runtime) Close() {
	if sqlDb, err := rt.db.DB(); err == nil {
		_ = sqlDb.Close()
	}
	_ = rt.logger.Sync()
}

func openRuntime() (*runtime, error) {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &runtime{
		cfg:    cfg,
		logger: logger,
		db:     db,
		repo:   repository.NewRepository(db, logger, cfg.Certificate),
	}, nil
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Administrative tasks for the maintenance certificate service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env.LoadEnv(globalFlags.envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&globalFlags.envFile, "env-file", ".env", "env file to load before reading configuration")

	rootCmd.AddCommand(
		migrateCommand(),
		seedCompanyCommand(),
		createUserCommand(),
		auditCodesCommand(),
		generateCodeCommand(),
		validateCommand(),
	)

	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
}
