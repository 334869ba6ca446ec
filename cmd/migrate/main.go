package main

import (
	"github.com/SeakMengs/MaintCert/internal/config"
	"github.com/SeakMengs/MaintCert/internal/database"
	"github.com/SeakMengs/MaintCert/internal/env"
	"github.com/SeakMengs/MaintCert/internal/util"
)

func init() {
	env.LoadEnv()
}

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()

	logger.Infof("Migrating %s database %s", cfg.DB.DRIVER, cfg.DB.DB_DATABASE)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Panic(err)
	}

	logger.Info("Migration completed")
}
