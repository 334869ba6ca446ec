package repository

import (
	"context"
	"testing"

	"github.com/SeakMengs/MaintCert/internal/config"
	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	repo         *Repository
	db           *gorm.DB
	client       *model.Client
	otherClient  *model.Client
	installation *model.Installation
	technician   *model.Technician
}

// In-memory sqlite with a single connection, every write is serialized like a real row lock would do
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDb, err := db.DB()
	require.NoError(t, err)
	sqlDb.SetMaxOpenConns(1)
	sqlDb.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDb.Close() })

	require.NoError(t, db.AutoMigrate(model.MigrateModels...))

	repo := NewRepository(db, zap.NewNop().Sugar(), config.CertificateConfig{
		MaxCodeAttempts:   10,
		MaxCreateAttempts: 3,
		MaxNumberSkips:    100,
	})

	ctx := context.Background()
	_, err = repo.Company.Upsert(ctx, nil, model.Company{
		Nombre:    "Servicios Integrales SpA",
		Rut:       "76123456-7",
		Direccion: "Av. Principal 123",
		Telefono:  "+56 2 2345 6789",
		Email:     "contacto@servicios.cl",
	})
	require.NoError(t, err)

	client, err := repo.Client.Create(ctx, nil, &model.Client{Nombre: "Juan Pérez", Rut: "12345678-9", Contacto: "Juan", Email: "juan@example.cl"})
	require.NoError(t, err)

	otherClient, err := repo.Client.Create(ctx, nil, &model.Client{Nombre: "Comercial Norte"})
	require.NoError(t, err)

	installation, err := repo.Installation.Create(ctx, nil, &model.Installation{Nombre: "Sucursal Centro", Direccion: "Calle Falsa 123", ClienteID: client.ID})
	require.NoError(t, err)

	technician, err := repo.Technician.Create(ctx, nil, &model.Technician{Nombre: "Pedro Soto", Especialidad: "CCTV"})
	require.NoError(t, err)

	return &fixture{
		repo:         repo,
		db:           db,
		client:       client,
		otherClient:  otherClient,
		installation: installation,
		technician:   technician,
	}
}
