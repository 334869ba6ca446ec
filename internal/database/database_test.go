package database

import (
	"path/filepath"
	"testing"

	"github.com/SeakMengs/MaintCert/internal/config"
)

func TestConnectSqlite(t *testing.T) {
	cfg := config.DatabaseConfig{
		DRIVER:       "sqlite",
		SQLITE_PATH:  filepath.Join(t.TempDir(), "test.sqlite"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		MaxIdleTime:  "1m",
	}

	db, err := ConnectReturnGormDB(cfg)
	if err != nil {
		t.Fatalf("ConnectReturnGormDB() error = %v", err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB() error = %v", err)
	}
	defer sqlDb.Close()

	if err := sqlDb.Ping(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// running twice must be a no-op
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	for _, table := range []string{"certificados", "certificado_secuencias", "usuarios", "empresa"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s was not created", table)
		}
	}
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := ConnectReturnGormDB(config.DatabaseConfig{DRIVER: "oracle"})
	if err == nil {
		t.Errorf("expected error for unsupported driver")
	}
}
