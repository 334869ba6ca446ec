package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/SeakMengs/MaintCert/internal/config"
	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open a gorm connection for the configured driver and apply pool settings
func ConnectReturnGormDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Map driver specific unique violations to gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}

	idleTime, err := time.ParseDuration(cfg.MaxIdleTime)
	if err != nil {
		idleTime = 15 * time.Minute
	}

	sqlDb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDb.SetConnMaxIdleTime(idleTime)

	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.DRIVER) {
	case "", "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DB_HOST, cfg.DB_USERNAME, cfg.DB_PASSWORD, cfg.DB_DATABASE, cfg.DB_PORT)
		return postgres.Open(dsn), nil
	case "sqlite":
		// WAL lets the public read path proceed while a creation transaction holds the write lock.
		// Immediate transactions take that lock up front so two creations queue instead of failing to upgrade
		return sqlite.Open(fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_txlock=immediate", cfg.SQLITE_PATH)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DRIVER)
	}
}

// Migrate creates or updates every table the service owns
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.MigrateModels...)
}
